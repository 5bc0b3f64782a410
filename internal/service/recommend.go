package service

import (
	"context"

	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/recommend"
)

// Recommendations is a ranked result set stamped with the catalog generation
// it was computed against, so consumers can tell when a refresh has made it
// stale.
type Recommendations struct {
	Results           []recommend.ScoredCandidate `json:"results"`
	CatalogGeneration uint64                      `json:"catalogGeneration"`
}

// RecommendationService derives suggestions from the cart or a viewed item,
// scored against the catalog snapshot.
type RecommendationService struct {
	catalog *CatalogService
	cart    *CartService
	logger  *logger.Logger
}

// NewRecommendationService creates the recommendation service.
func NewRecommendationService(catalog *CatalogService, cart *CartService, log *logger.Logger) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		cart:    cart,
		logger:  log,
	}
}

// ForCart recommends items similar to the cart contents. Cart items are
// excluded from the results. An empty cart yields no recommendations.
func (s *RecommendationService) ForCart(ctx context.Context, limit int) (*Recommendations, error) {
	items := s.cart.Items()
	seed := recommend.SeedFromLineItems(items)
	return s.rank(ctx, seed, recommend.ExcludeSKUs(s.cart.SKUs()), limit)
}

// ForItem recommends items similar to one viewed item, excluding the item
// itself.
func (s *RecommendationService) ForItem(ctx context.Context, sku string, limit int) (*Recommendations, error) {
	item, err := s.catalog.Get(ctx, sku)
	if err != nil {
		return nil, err
	}
	seed := recommend.SeedFromProduct(item)
	return s.rank(ctx, seed, recommend.ExcludeSKUs([]string{sku}), limit)
}

func (s *RecommendationService) rank(ctx context.Context, seed recommend.Seed, exclude map[string]struct{}, limit int) (*Recommendations, error) {
	if seed.Empty() {
		return &Recommendations{
			Results:           []recommend.ScoredCandidate{},
			CatalogGeneration: s.catalog.Generation(),
		}, nil
	}

	candidates, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}

	return &Recommendations{
		Results:           recommend.Rank(seed, candidates, exclude, limit),
		CatalogGeneration: s.catalog.Generation(),
	}, nil
}
