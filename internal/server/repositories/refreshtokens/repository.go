// Package refreshtokens stores the server half of sign-in sessions: one row
// per issued refresh token.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

type Repository interface {
	// Create records token as a live session of userID until expiresAt.
	Create(ctx context.Context, userID, token string, expiresAt time.Time) error

	// Find returns common.ErrorNotFound for revoked or never issued tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete revokes a single session. Unknown tokens are ignored.
	Delete(ctx context.Context, token string) error

	// DeleteByUser revokes every session of userID and returns how many there were.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
