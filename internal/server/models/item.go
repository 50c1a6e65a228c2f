package models

import "time"

// Marketplace categories accepted by marketplace_items.category.
var Categories = []string{"jewelry", "beadwork", "clothing", "paintings", "other"}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// MarketplaceItem is a listing. Seller contact is copied from the owner's
// profile when the listing is created.
type MarketplaceItem struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	SellerEmail string
	SellerPhone string
	CreatedAt   time.Time
}
