// Package messages stores chairman broadcasts.
package messages

import (
	"context"

	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
)

type Repository interface {
	// Latest returns the newest message or common.ErrorNotFound.
	Latest(ctx context.Context) (*models.ChairmanMessage, error)
	Create(ctx context.Context, m *models.ChairmanMessage) (*models.ChairmanMessage, error)
	// Delete returns common.ErrorNotFound when no row has the given id.
	Delete(ctx context.Context, id string) error
}
