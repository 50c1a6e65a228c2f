package client

import (
	"context"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
)

// MarketplaceRemote exposes the marketplace collection to the list mediator.
type MarketplaceRemote struct {
	c *GRPCClient
}

func (s *GRPCClient) Marketplace() *MarketplaceRemote {
	return &MarketplaceRemote{c: s}
}

func (m *MarketplaceRemote) List(ctx context.Context, owner string) ([]*models.MarketplaceItem, error) {
	return m.c.ListItems(ctx, owner)
}

func (m *MarketplaceRemote) Create(ctx context.Context, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	return m.c.CreateItem(ctx, item)
}

func (m *MarketplaceRemote) Update(ctx context.Context, id string, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	return m.c.UpdateItem(ctx, id, item)
}

func (m *MarketplaceRemote) Delete(ctx context.Context, id string) error {
	return m.c.DeleteItem(ctx, id)
}
