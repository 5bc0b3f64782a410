package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yancarpet/storefront/internal/domain"
)

func product(sku string, keywords, rooms []string) domain.Product {
	return domain.Product{
		SKU:       sku,
		Name:      "Rug " + sku,
		Keywords:  keywords,
		RoomTypes: rooms,
	}
}

func TestRank_OverlapWeighting(t *testing.T) {
	seed := NewSeed([]string{"wool"}, []string{"bedroom"})
	catalog := []domain.Product{
		product("A", []string{"wool", "handwoven"}, []string{"bedroom"}),
		product("B", nil, []string{"bedroom", "living"}),
		product("C", []string{"synthetic"}, nil),
	}

	ranked := Rank(seed, catalog, nil, 0)

	// A: 2*1 keyword + 1 room = 3. B: 1 room. C scores zero and is dropped.
	assert.Len(t, ranked, 2)
	assert.Equal(t, "A", ranked[0].Item.SKU)
	assert.Equal(t, 3, ranked[0].Score)
	assert.Equal(t, "B", ranked[1].Item.SKU)
	assert.Equal(t, 1, ranked[1].Score)
}

func TestRank_EmptySeedReturnsNothing(t *testing.T) {
	seed := NewSeed(nil, nil)
	catalog := []domain.Product{
		product("A", []string{"wool"}, []string{"bedroom"}),
	}

	assert.True(t, seed.Empty())
	assert.Empty(t, Rank(seed, catalog, nil, 0))
}

func TestRank_ExcludesSeedItems(t *testing.T) {
	seed := NewSeed([]string{"wool"}, nil)
	catalog := []domain.Product{
		product("in-cart", []string{"wool"}, nil),
		product("other", []string{"wool"}, nil),
	}

	ranked := Rank(seed, catalog, ExcludeSKUs([]string{"in-cart"}), 0)

	assert.Len(t, ranked, 1)
	assert.Equal(t, "other", ranked[0].Item.SKU)
}

func TestRank_StableTieOrder(t *testing.T) {
	seed := NewSeed([]string{"wool"}, nil)
	catalog := []domain.Product{
		product("first", []string{"wool"}, nil),
		product("second", []string{"wool"}, nil),
		product("third", []string{"wool"}, nil),
	}

	ranked := Rank(seed, catalog, nil, 0)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Item.SKU)
	assert.Equal(t, "second", ranked[1].Item.SKU)
	assert.Equal(t, "third", ranked[2].Item.SKU)
}

func TestRank_DefaultLimit(t *testing.T) {
	seed := NewSeed([]string{"wool"}, nil)
	catalog := make([]domain.Product, 0, 12)
	for i := 0; i < 12; i++ {
		catalog = append(catalog, product(fmt.Sprintf("sku-%02d", i), []string{"wool"}, nil))
	}

	assert.Len(t, Rank(seed, catalog, nil, 0), DefaultLimit)
	assert.Len(t, Rank(seed, catalog, nil, 3), 3)
}

func TestRank_CaseInsensitiveOverlap(t *testing.T) {
	seed := NewSeed([]string{"Wool"}, []string{"BEDROOM"})
	catalog := []domain.Product{
		product("A", []string{"WOOL"}, []string{"Bedroom"}),
	}

	ranked := Rank(seed, catalog, nil, 0)

	assert.Len(t, ranked, 1)
	assert.Equal(t, 3, ranked[0].Score)
}

func TestRank_DuplicateTermsCountOnce(t *testing.T) {
	seed := NewSeed([]string{"wool"}, nil)
	catalog := []domain.Product{
		product("A", []string{"wool", "wool", "wool"}, nil),
	}

	ranked := Rank(seed, catalog, nil, 0)

	assert.Len(t, ranked, 1)
	assert.Equal(t, 2, ranked[0].Score)
}

func TestSeedFromLineItems(t *testing.T) {
	items := []domain.LineItem{
		{SKU: "A", Keywords: []string{"Wool", "handwoven"}, RoomTypes: []string{"bedroom"}},
		{SKU: "B", Keywords: []string{"wool"}, RoomTypes: []string{"Living"}},
	}

	seed := SeedFromLineItems(items)

	assert.Len(t, seed.Keywords, 2)
	assert.Contains(t, seed.Keywords, "wool")
	assert.Contains(t, seed.Keywords, "handwoven")
	assert.Len(t, seed.RoomTypes, 2)
	assert.Contains(t, seed.RoomTypes, "living")
}

func TestSeedFromProduct(t *testing.T) {
	p := product("A", []string{"jute"}, []string{"hallway"})
	seed := SeedFromProduct(&p)

	assert.Contains(t, seed.Keywords, "jute")
	assert.Contains(t, seed.RoomTypes, "hallway")
	assert.False(t, seed.Empty())
}
