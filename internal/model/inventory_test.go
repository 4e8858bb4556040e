package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventoryItem_Low(t *testing.T) {
	assert.True(t, InventoryItem{Quantity: 3, ReorderLevel: 5}.Low())
	assert.True(t, InventoryItem{Quantity: 5, ReorderLevel: 5}.Low())
	assert.False(t, InventoryItem{Quantity: 6, ReorderLevel: 5}.Low())
	assert.True(t, InventoryItem{Quantity: 0, ReorderLevel: 0}.Low())
}
