// Package vault stores the per-user ID document reference.
package vault

import (
	"context"

	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, userID string) (*models.VaultEntry, error)
	// Upsert inserts or replaces the single entry of v.UserID.
	Upsert(ctx context.Context, v *models.VaultEntry) (*models.VaultEntry, error)
}
