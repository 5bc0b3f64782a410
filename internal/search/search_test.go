package search

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yancarpet/storefront/internal/domain"
)

func setupIndex(t *testing.T) *CatalogIndex {
	t.Helper()

	idx, err := NewCatalogIndex(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	err = idx.Rebuild([]domain.Product{
		{
			SKU:       "RUG-001",
			Name:      "Heritage Wool Runner",
			Material:  "Wool",
			Color:     "Red",
			RoomTypes: []string{"Hallway"},
			Keywords:  []string{"handwoven", "runner"},
			UnitPrice: 249.99,
		},
		{
			SKU:       "RUG-002",
			Name:      "Coastal Jute Rug",
			Material:  "Jute",
			Color:     "Beige",
			RoomTypes: []string{"Living", "Bedroom"},
			Keywords:  []string{"natural", "flat-weave"},
			UnitPrice: 129.00,
		},
		{
			SKU:       "RUG-003",
			Name:      "Midnight Wool Rug",
			Material:  "Wool",
			Color:     "Blue",
			RoomTypes: []string{"Bedroom"},
			Keywords:  []string{"handwoven", "plush"},
			UnitPrice: 399.50,
		},
	})
	require.NoError(t, err)

	return idx
}

func TestCatalogIndex_TextSearch(t *testing.T) {
	idx := setupIndex(t)

	params := DefaultSearchParams()
	params.Query = "wool"

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), result.Total)
	skus := make([]string, 0, len(result.Hits))
	for _, h := range result.Hits {
		skus = append(skus, h.SKU)
	}
	assert.ElementsMatch(t, []string{"RUG-001", "RUG-003"}, skus)
}

func TestCatalogIndex_FacetFilter(t *testing.T) {
	idx := setupIndex(t)

	params := DefaultSearchParams()
	params.RoomTypes = []string{"Bedroom"}

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), result.Total)
}

func TestCatalogIndex_CombinedFilters(t *testing.T) {
	idx := setupIndex(t)

	params := DefaultSearchParams()
	params.Materials = []string{"wool"}
	params.RoomTypes = []string{"bedroom"}

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, result.Hits, 1)
	assert.Equal(t, "RUG-003", result.Hits[0].SKU)
}

func TestCatalogIndex_PriceRange(t *testing.T) {
	idx := setupIndex(t)

	params := DefaultSearchParams()
	params.MinPrice = 100
	params.MaxPrice = 300

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), result.Total)
}

func TestCatalogIndex_Facets(t *testing.T) {
	idx := setupIndex(t)

	params := DefaultSearchParams()

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)

	materials := make(map[string]int)
	for _, f := range result.Facets.Materials {
		materials[f.Value] = f.Count
	}
	assert.Equal(t, 2, materials["wool"])
	assert.Equal(t, 1, materials["jute"])
}

func TestCatalogIndex_RebuildReplacesSnapshot(t *testing.T) {
	idx := setupIndex(t)

	err := idx.Rebuild([]domain.Product{
		{SKU: "RUG-100", Name: "Solo Rug", Material: "Cotton"},
	})
	require.NoError(t, err)

	count, err := idx.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	params := DefaultSearchParams()
	params.Query = "wool"
	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), result.Total)
}

func TestCatalogIndex_SortByPrice(t *testing.T) {
	idx := setupIndex(t)

	params := DefaultSearchParams()
	params.SortBy = "price"
	params.SortOrder = "asc"

	result, err := idx.Search(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, result.Hits, 3)
	assert.Equal(t, "RUG-002", result.Hits[0].SKU)
	assert.Equal(t, "RUG-003", result.Hits[2].SKU)
}
