package models

import (
	"testing"

	"github.com/dmitrijs2005/hoopaconnect/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleChairman, RoleEnrollment} {
		got, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseRole("admin")
	require.Error(t, err)
	assert.Equal(t, RoleUser, got)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("  BeadWork ")
	require.NoError(t, err)
	assert.Equal(t, CategoryBeadwork, c)

	_, err = ParseCategory("furniture")
	require.Error(t, err)

	assert.Len(t, Categories(), 5)
	assert.Equal(t, "Category(9)", Category(9).String())
}

func TestSession(t *testing.T) {
	s := Anonymous()
	_, ok := s.Identity()
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())

	s = Authenticated(Identity{UserID: "u1", Email: "a@b.c"})
	id, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, "u1", id.UserID)
}

func TestMarketplaceItem_Validate(t *testing.T) {
	valid := MarketplaceItem{Title: "Necklace", Description: "Glass beads", Price: 20, ImageURL: "https://img"}
	require.NoError(t, valid.Validate())

	free := valid
	free.Price = 0
	require.NoError(t, free.Validate(), "giveaways are listed at zero")

	cases := map[string]func(i *MarketplaceItem){
		"title":       func(i *MarketplaceItem) { i.Title = "  " },
		"description": func(i *MarketplaceItem) { i.Description = "" },
		"price":       func(i *MarketplaceItem) { i.Price = -0.01 },
		"image_url":   func(i *MarketplaceItem) { i.ImageURL = "" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			item := valid
			mutate(&item)
			err := item.Validate()
			var ve *common.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
		})
	}
}

func TestMarketplaceItem_SearchFields(t *testing.T) {
	i := &MarketplaceItem{Title: "Shawl", Category: CategoryClothing, SellerEmail: "bead@x.org"}
	assert.Equal(t, []string{"Shawl", "clothing"}, i.SearchFields())
}
