package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, IsCategory(c), c)
	}
	assert.False(t, IsCategory("Jewelry"))
	assert.False(t, IsCategory(""))
	assert.False(t, IsCategory("furniture"))
}
