package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
)

// Record is a row of a remote collection as handled by list views.
type Record interface {
	RecordID() string
	Created() time.Time
	// SearchFields are the only fields matched by the list search box.
	SearchFields() []string
}

type Profile struct {
	ID         string
	Email      string
	FullName   string
	Phone      string
	ProfilePic string
	UpdatedAt  time.Time
}

func (p *Profile) Validate() error {
	if strings.TrimSpace(p.FullName) == "" {
		return &common.ValidationError{Field: "full_name", Reason: "required"}
	}
	return nil
}

type ChairmanMessage struct {
	ID        string
	Message   string
	CreatedBy string
	CreatedAt time.Time
}

func (m *ChairmanMessage) Validate() error {
	if strings.TrimSpace(m.Message) == "" {
		return &common.ValidationError{Field: "message", Reason: "required"}
	}
	return nil
}

type VaultEntry struct {
	UserID     string
	StorageKey string
	IDImageURL string
	UpdatedAt  time.Time
}

type MarketplaceItem struct {
	ID          string
	Owner       string
	Title       string
	Description string
	Price       float64
	Category    Category
	ImageURL    string
	SellerEmail string
	SellerPhone string
	CreatedAt   time.Time
}

func (i *MarketplaceItem) RecordID() string   { return i.ID }
func (i *MarketplaceItem) Created() time.Time { return i.CreatedAt }

// SearchFields are title and category. Description and seller contact are
// not searchable.
func (i *MarketplaceItem) SearchFields() []string {
	return []string{i.Title, i.Category.String()}
}

// Validate reports the first empty or malformed required field.
func (i *MarketplaceItem) Validate() error {
	switch {
	case strings.TrimSpace(i.Title) == "":
		return &common.ValidationError{Field: "title", Reason: "required"}
	case strings.TrimSpace(i.Description) == "":
		return &common.ValidationError{Field: "description", Reason: "required"}
	case i.Price < 0:
		return &common.ValidationError{Field: "price", Reason: "must not be negative"}
	case strings.TrimSpace(i.ImageURL) == "":
		return &common.ValidationError{Field: "image_url", Reason: "required"}
	}
	return nil
}
