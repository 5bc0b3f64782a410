package providers

import (
	"github.com/samber/do/v2"

	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/search"
)

// CatalogIndexHandle wraps the search index with shutdown capability.
type CatalogIndexHandle struct {
	*search.CatalogIndex
}

// Shutdown implements do.Shutdownable.
func (h *CatalogIndexHandle) Shutdown() error {
	return h.Close()
}

// ProvideCatalogIndex provides the in-memory catalog search index.
func ProvideCatalogIndex(i do.Injector) (*CatalogIndexHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	index, err := search.NewCatalogIndex(log.Logger)
	if err != nil {
		return nil, err
	}

	return &CatalogIndexHandle{CatalogIndex: index}, nil
}
