package service

import (
	"context"
	"sync"
	"time"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/search"
	"github.com/yancarpet/storefront/internal/store"

	domainerrors "github.com/yancarpet/storefront/internal/errors"
)

// CatalogGateway is the slice of the backend client the catalog needs.
type CatalogGateway interface {
	ListItems(ctx context.Context) ([]domain.Product, error)
	SearchItems(ctx context.Context, query string) ([]domain.Product, error)
	GetItem(ctx context.Context, sku string) (*domain.Product, error)
}

// CatalogService maintains the local catalog snapshot: the backend's item
// list cached to disk, mirrored into the search index, and consulted by
// recommendations and the cart.
//
// Refreshes carry a generation number. A slow refresh that finishes after a
// newer one is discarded rather than applied, so the snapshot never moves
// backwards.
type CatalogService struct {
	mu      sync.RWMutex
	gateway CatalogGateway
	store   *store.Store
	index   *search.CatalogIndex
	logger  *logger.Logger

	items      []domain.Product
	bySKU      map[string]int
	generation uint64 // of the applied snapshot
	issued     uint64 // last refresh generation handed out
	loadedAt   time.Time
}

// NewCatalogService creates the catalog service, restoring the cached
// snapshot so browsing works before the first refresh completes.
func NewCatalogService(gw CatalogGateway, st *store.Store, index *search.CatalogIndex, log *logger.Logger) *CatalogService {
	s := &CatalogService{
		gateway: gw,
		store:   st,
		index:   index,
		logger:  log,
	}

	var cached []domain.Product
	if st.Load(store.KeyCatalog, &cached) && len(cached) > 0 {
		s.apply(0, cached, false)
		log.Info("restored catalog snapshot", "items", len(cached))
	}

	return s
}

// apply installs a snapshot if gen is not older than the applied one.
// Returns false when the snapshot lost the race and was discarded.
func (s *CatalogService) apply(gen uint64, items []domain.Product, persist bool) bool {
	s.mu.Lock()
	if gen < s.generation {
		s.mu.Unlock()
		return false
	}
	s.items = items
	s.generation = gen
	s.loadedAt = time.Now()
	s.bySKU = make(map[string]int, len(items))
	for i := range items {
		s.bySKU[items[i].SKU] = i
	}
	if persist {
		s.store.Save(store.KeyCatalog, items)
	}
	s.mu.Unlock()

	if err := s.index.Rebuild(items); err != nil {
		s.logger.Warn("catalog index rebuild failed", "error", err)
	}
	return true
}

// Refresh fetches the catalog from the backend and installs it. When the
// backend is unreachable and a cached snapshot exists, the error is returned
// alongside nothing: callers keep serving the stale snapshot via Items.
func (s *CatalogService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	gen := s.issued
	s.mu.Unlock()

	items, err := s.gateway.ListItems(ctx)
	if err != nil {
		return err
	}

	if !s.apply(gen, items, true) {
		s.logger.Debug("discarded stale catalog refresh", "generation", gen)
		return nil
	}

	s.logger.Info("catalog refreshed", "items", len(items))
	return nil
}

// Items returns the current snapshot, refreshing first if none is loaded.
func (s *CatalogService) Items(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	loaded := len(s.items) > 0
	s.mu.RUnlock()

	if !loaded {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	return s.snapshot(), nil
}

func (s *CatalogService) snapshot() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Generation returns the generation of the applied snapshot. Consumers can
// compare it across calls to detect that results were computed against an
// older catalog.
func (s *CatalogService) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Get returns one item, loading the snapshot first like Items does. A SKU
// the snapshot does not have is fetched straight from the backend.
func (s *CatalogService) Get(ctx context.Context, sku string) (*domain.Product, error) {
	if sku == "" {
		return nil, domainerrors.Validation("sku is required")
	}

	// A failed load is not fatal here; the per-SKU fetch below still answers.
	if _, err := s.Items(ctx); err != nil {
		s.logger.Debug("catalog load failed before item lookup", "error", err)
	}

	s.mu.RLock()
	if i, ok := s.bySKU[sku]; ok {
		p := s.items[i]
		s.mu.RUnlock()
		return &p, nil
	}
	s.mu.RUnlock()

	return s.gateway.GetItem(ctx, sku)
}

// Search runs a full-text search over the local snapshot, loading it first
// if needed.
func (s *CatalogService) Search(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	if _, err := s.Items(ctx); err != nil {
		return nil, err
	}
	return s.index.Search(ctx, params)
}

// SearchRemote runs the backend's own keyword search, bypassing the local
// snapshot. Used when the shopper wants results the snapshot may not have.
func (s *CatalogService) SearchRemote(ctx context.Context, query string) ([]domain.Product, error) {
	return s.gateway.SearchItems(ctx, query)
}

// FilterOptions aggregates the facet values present in the snapshot.
func (s *CatalogService) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}
	return domain.AggregateFilterOptions(items), nil
}
