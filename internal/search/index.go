package search

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/yancarpet/storefront/internal/domain"
)

// CatalogIndex wraps a memory-only Bleve index over the catalog snapshot.
//
// Thread safety: all public methods are safe for concurrent use. The mutex
// protects searches against the index swap during Rebuild.
type CatalogIndex struct {
	index  bleve.Index
	logger *slog.Logger
	mu     sync.RWMutex
}

// NewCatalogIndex creates an empty in-memory index.
func NewCatalogIndex(logger *slog.Logger) (*CatalogIndex, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &CatalogIndex{
		index:  index,
		logger: logger,
	}, nil
}

// Close closes the index and releases resources.
func (s *CatalogIndex) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

// Rebuild replaces the index contents with the given catalog snapshot.
// Called on every catalog refresh; the old index is discarded wholesale
// rather than diffed, the catalog is small enough that this is cheap.
func (s *CatalogIndex) Rebuild(items []domain.Product) error {
	fresh, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	const batchSize = 500

	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))

		batch := fresh.NewBatch()
		for j := i; j < end; j++ {
			doc := DocumentFromProduct(&items[j])
			if err := batch.Index(doc.SKU, doc.ToMap()); err != nil {
				_ = fresh.Close()
				return fmt.Errorf("batch index %s: %w", doc.SKU, err)
			}
		}

		if err := fresh.Batch(batch); err != nil {
			_ = fresh.Close()
			return fmt.Errorf("commit batch %d-%d: %w", i, end, err)
		}
	}

	s.mu.Lock()
	old := s.index
	s.index = fresh
	s.mu.Unlock()

	if err := old.Close(); err != nil {
		s.logger.Warn("failed to close replaced catalog index", "error", err)
	}

	s.logger.Debug("rebuilt catalog index", "items", len(items))
	return nil
}

// DocumentCount returns the total number of indexed items.
func (s *CatalogIndex) DocumentCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.DocCount()
}
