package models

import (
	"fmt"
	"strings"
)

// Category classifies a marketplace item.
type Category int

const (
	CategoryJewelry Category = iota
	CategoryBeadwork
	CategoryClothing
	CategoryPaintings
	CategoryOther
)

var categoryNames = []string{"jewelry", "beadwork", "clothing", "paintings", "other"}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategoryJewelry, CategoryBeadwork, CategoryClothing, CategoryPaintings, CategoryOther}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory accepts a category name in any letter case.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return CategoryOther, fmt.Errorf("unknown category %q", s)
}
