package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/auth"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/repositories/repomanager"
)

// MarketplaceService manages listings. Everyone reads; only the owner
// updates or deletes.
type MarketplaceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMarketplaceService(db *sql.DB, m repomanager.RepositoryManager) *MarketplaceService {
	return &MarketplaceService{db: db, repomanager: m}
}

func validateItem(item *models.MarketplaceItem) error {
	item.Title = strings.TrimSpace(item.Title)
	item.Description = strings.TrimSpace(item.Description)
	item.Category = strings.ToLower(strings.TrimSpace(item.Category))

	switch {
	case item.Title == "":
		return &common.ValidationError{Field: "title", Reason: "required"}
	case item.Description == "":
		return &common.ValidationError{Field: "description", Reason: "required"}
	case item.Price < 0:
		return &common.ValidationError{Field: "price", Reason: "must not be negative"}
	case !models.IsCategory(item.Category):
		return &common.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", item.Category)}
	case item.ImageURL == "":
		return &common.ValidationError{Field: "image_url", Reason: "required"}
	}
	return nil
}

func (s *MarketplaceService) List(ctx context.Context, ownerID string) ([]*models.MarketplaceItem, error) {
	return s.repomanager.Marketplace(s.db).List(ctx, ownerID)
}

// Create stores item owned by the caller. Seller contact is copied from the
// caller's identity and profile at this moment.
func (s *MarketplaceService) Create(ctx context.Context, caller auth.Identity, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}

	item.UserID = caller.UserID
	item.SellerEmail = caller.Email

	profile, err := s.repomanager.Profiles(s.db).Get(ctx, caller.UserID)
	switch {
	case err == nil:
		item.SellerPhone = profile.Phone
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("error loading profile: %w", err)
	}

	return s.repomanager.Marketplace(s.db).Create(ctx, item)
}

// Update rewrites an item the caller owns. Items owned by someone else are
// reported as not found.
func (s *MarketplaceService) Update(ctx context.Context, callerID string, item *models.MarketplaceItem) (*models.MarketplaceItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	item.UserID = callerID
	return s.repomanager.Marketplace(s.db).Update(ctx, item)
}

func (s *MarketplaceService) Delete(ctx context.Context, callerID, id string) error {
	return s.repomanager.Marketplace(s.db).Delete(ctx, id, callerID)
}
