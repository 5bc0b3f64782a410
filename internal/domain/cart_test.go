package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rug(sku string, price float64) Product {
	return Product{SKU: sku, Name: "Rug " + sku, UnitPrice: price}
}

func TestCart_AddMergesAndClampsQuantity(t *testing.T) {
	var c Cart

	c.Add(rug("A", 100), 0) // clamped to 1
	c.Add(rug("A", 100), 2)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestCart_AddCapturesPriceOnce(t *testing.T) {
	var c Cart

	c.Add(rug("A", 100), 1)
	c.Add(rug("A", 150), 1)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 100.0, c.Items[0].UnitPrice)
}

func TestCart_SetQuantity(t *testing.T) {
	var c Cart
	c.Add(rug("A", 100), 1)

	c.SetQuantity("A", 5)
	assert.Equal(t, 5, c.Items[0].Quantity)

	c.SetQuantity("A", 0)
	assert.Equal(t, 1, c.Items[0].Quantity)

	// Unknown SKU is a no-op, not a creation
	c.SetQuantity("B", 3)
	assert.Len(t, c.Items, 1)
}

func TestCart_DecrementFloorsAtOne(t *testing.T) {
	var c Cart
	c.Add(rug("A", 100), 2)

	c.Decrement("A")
	c.Decrement("A")
	c.Decrement("A")

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.True(t, c.Contains("A"))
}

func TestCart_RemoveAndClear(t *testing.T) {
	var c Cart
	c.Add(rug("A", 100), 1)
	c.Add(rug("B", 50), 1)

	c.Remove("A")
	c.Remove("A")
	assert.False(t, c.Contains("A"))
	assert.True(t, c.Contains("B"))

	c.Clear()
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.Count())
}

func TestCart_Totals(t *testing.T) {
	var c Cart
	c.Add(rug("A", 10.005), 1)
	c.Add(rug("B", 20), 2)

	assert.InDelta(t, 50.005, c.Total(), 1e-9)
	assert.InDelta(t, 50.01, c.TotalRounded(), 1e-9)
	assert.InDelta(t, 50.01, RoundTotal(c.Snapshot()), 1e-9)
	assert.Equal(t, 3, c.Count())
}

func TestCart_SnapshotIsCopy(t *testing.T) {
	var c Cart
	c.Add(rug("A", 100), 1)

	snap := c.Snapshot()
	snap[0].Quantity = 99

	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestLineItem_Subtotal(t *testing.T) {
	li := LineItem{UnitPrice: 12.5, Quantity: 4}
	assert.Equal(t, 50.0, li.Subtotal())
}
