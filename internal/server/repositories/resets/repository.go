// Package resets stores single-use password reset tokens.
package resets

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.PasswordReset, error)
	// MarkUsed returns common.ErrorNotFound if the token is unknown or already used.
	MarkUsed(ctx context.Context, token string) error
}
