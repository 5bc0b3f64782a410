package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/store"
)

func woolRunner() domain.Product {
	return domain.Product{
		SKU:       "RUG-001",
		Name:      "Heritage Wool Runner",
		UnitPrice: 249.99,
		Keywords:  []string{"wool", "runner"},
		RoomTypes: []string{"hallway"},
	}
}

func TestCartService_AddMergesQuantity(t *testing.T) {
	svc := NewCartService(newTestStore(t), testLogger())

	svc.Add(woolRunner(), 1)
	items := svc.Add(woolRunner(), 2)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, svc.Count())
}

func TestCartService_PriceLockedAtFirstAdd(t *testing.T) {
	svc := NewCartService(newTestStore(t), testLogger())

	svc.Add(woolRunner(), 1)

	repriced := woolRunner()
	repriced.UnitPrice = 299.99
	items := svc.Add(repriced, 1)

	require.Len(t, items, 1)
	assert.Equal(t, 249.99, items[0].UnitPrice)
}

func TestCartService_PersistsAcrossRestart(t *testing.T) {
	st := newTestStore(t)

	svc := NewCartService(st, testLogger())
	svc.Add(woolRunner(), 2)

	restored := NewCartService(st, testLogger())
	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "RUG-001", items[0].SKU)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartService_QuantityFloorsAtOne(t *testing.T) {
	svc := NewCartService(newTestStore(t), testLogger())
	svc.Add(woolRunner(), 1)

	items := svc.Decrement("RUG-001")
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items = svc.SetQuantity("RUG-001", -5)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartService_RemoveIsIdempotent(t *testing.T) {
	svc := NewCartService(newTestStore(t), testLogger())
	svc.Add(woolRunner(), 1)

	assert.Empty(t, svc.Remove("RUG-001"))
	assert.Empty(t, svc.Remove("RUG-001"))
	assert.Empty(t, svc.Remove("never-existed"))
}

func TestCartService_Totals(t *testing.T) {
	svc := NewCartService(newTestStore(t), testLogger())

	second := domain.Product{SKU: "RUG-002", UnitPrice: 10.005}
	svc.Add(woolRunner(), 2) // 499.98
	svc.Add(second, 1)       // 10.005

	assert.InDelta(t, 509.985, svc.Total(), 1e-9)
	assert.InDelta(t, 509.99, svc.TotalRounded(), 1e-9)
}

func TestCartService_ClearSurvivesRestart(t *testing.T) {
	st := newTestStore(t)
	svc := NewCartService(st, testLogger())
	svc.Add(woolRunner(), 3)

	svc.Clear()

	restored := NewCartService(st, testLogger())
	assert.Empty(t, restored.Items())
	assert.Equal(t, 0, restored.Count())
}

func TestCartService_SnapshotIsDetached(t *testing.T) {
	svc := NewCartService(newTestStore(t), testLogger())
	svc.Add(woolRunner(), 1)

	items := svc.Items()
	items[0].Quantity = 99

	fresh := svc.Items()
	assert.Equal(t, 1, fresh[0].Quantity)
}

// Write-through means the store copy always matches the in-memory cart.
func TestCartService_WriteThrough(t *testing.T) {
	st := newTestStore(t)
	svc := NewCartService(st, testLogger())

	svc.Add(woolRunner(), 1)
	svc.Increment("RUG-001")

	var persisted domain.Cart
	require.True(t, st.Load(store.KeyCart, &persisted))
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, 2, persisted.Items[0].Quantity)
}
