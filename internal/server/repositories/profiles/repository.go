// Package profiles stores the user-editable profile rows.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

type Repository interface {
	// Create inserts the empty profile row created at sign-up.
	Create(ctx context.Context, p *models.Profile) error
	// Get returns common.ErrorNotFound when the user has no profile row.
	Get(ctx context.Context, id string) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) (*models.Profile, error)
}
