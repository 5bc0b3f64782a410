// Package recommend ranks catalog items against a seed profile derived from
// the shopper's cart or the item they are viewing. Keyword overlap counts
// double; room-type overlap counts single. Everything here is pure.
package recommend

import (
	"sort"
	"strings"

	"github.com/yancarpet/storefront/internal/domain"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not ask for a specific count.
const DefaultLimit = 8

// Seed is the profile candidates are scored against. Terms are lowercase
// and deduplicated. A seed is derived on demand and never persisted.
type Seed struct {
	Keywords  map[string]struct{}
	RoomTypes map[string]struct{}
}

// Empty reports whether the seed has no terms at all. An empty seed scores
// every candidate zero, so the result is empty by design.
func (s Seed) Empty() bool {
	return len(s.Keywords) == 0 && len(s.RoomTypes) == 0
}

// NewSeed builds a seed from raw keyword and room-type lists.
func NewSeed(keywords, roomTypes []string) Seed {
	return Seed{
		Keywords:  toSet(keywords),
		RoomTypes: toSet(roomTypes),
	}
}

// SeedFromLineItems derives a seed from cart contents.
func SeedFromLineItems(items []domain.LineItem) Seed {
	seed := Seed{
		Keywords:  make(map[string]struct{}),
		RoomTypes: make(map[string]struct{}),
	}
	for i := range items {
		addAll(seed.Keywords, items[i].Keywords)
		addAll(seed.RoomTypes, items[i].RoomTypes)
	}
	return seed
}

// SeedFromProduct derives a seed from a single viewed item.
func SeedFromProduct(p *domain.Product) Seed {
	return NewSeed(p.Keywords, p.RoomTypes)
}

// ScoredCandidate pairs a catalog item with its overlap score.
type ScoredCandidate struct {
	Item  domain.Product `json:"item"`
	Score int            `json:"score"`
}

// Rank scores each candidate not in the exclusion set, drops zero scores,
// and returns the top limit results in descending score order. Ties keep the
// candidates' input order (stable sort). A limit of 0 means DefaultLimit.
func Rank(seed Seed, candidates []domain.Product, exclude map[string]struct{}, limit int) []ScoredCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		if _, skip := exclude[c.SKU]; skip {
			continue
		}
		score := 2*overlap(seed.Keywords, c.Keywords) + overlap(seed.RoomTypes, c.RoomTypes)
		if score == 0 {
			continue
		}
		scored = append(scored, ScoredCandidate{Item: *c, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// ExcludeSKUs builds an exclusion set from SKU lists.
func ExcludeSKUs(lists ...[]string) map[string]struct{} {
	exclude := make(map[string]struct{})
	for _, list := range lists {
		for _, sku := range list {
			exclude[sku] = struct{}{}
		}
	}
	return exclude
}

// overlap counts how many terms appear in the seed set, case-insensitively.
// Duplicate terms in the candidate list count once.
func overlap(set map[string]struct{}, terms []string) int {
	if len(set) == 0 || len(terms) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(terms))
	count := 0
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := set[t]; ok {
			count++
		}
	}
	return count
}

func toSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	addAll(set, terms)
	return set
}

func addAll(set map[string]struct{}, terms []string) {
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
}
