// Package marketplace stores marketplace listings.
package marketplace

import (
	"context"

	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

type Repository interface {
	// List returns listings newest first. A non-empty ownerID limits the
	// result to that owner's listings.
	List(ctx context.Context, ownerID string) ([]*models.MarketplaceItem, error)
	Get(ctx context.Context, id string) (*models.MarketplaceItem, error)
	Create(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error)
	// Update and Delete only touch rows owned by the given user and return
	// common.ErrorNotFound otherwise.
	Update(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error)
	Delete(ctx context.Context, id string, ownerID string) error
}
