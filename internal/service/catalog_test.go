package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yancarpet/storefront/internal/domain"
	domainerrors "github.com/yancarpet/storefront/internal/errors"
	"github.com/yancarpet/storefront/internal/search"
	"github.com/yancarpet/storefront/internal/store"
)

type fakeCatalogGateway struct {
	items     []domain.Product
	listErr   error
	listCalls int
	getCalls  int
}

func (f *fakeCatalogGateway) ListItems(_ context.Context) ([]domain.Product, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeCatalogGateway) SearchItems(_ context.Context, _ string) ([]domain.Product, error) {
	return f.items, f.listErr
}

func (f *fakeCatalogGateway) GetItem(_ context.Context, sku string) (*domain.Product, error) {
	f.getCalls++
	for i := range f.items {
		if f.items[i].SKU == sku {
			return &f.items[i], nil
		}
	}
	return nil, domainerrors.NotFoundf("item %s not found", sku)
}

func setupCatalog(t *testing.T, gw *fakeCatalogGateway) (*CatalogService, *store.Store) {
	t.Helper()

	st := newTestStore(t)
	idx, err := search.NewCatalogIndex(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	return NewCatalogService(gw, st, idx, testLogger()), st
}

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{SKU: "RUG-001", Name: "Heritage Wool Runner", Keywords: []string{"wool"}, RoomTypes: []string{"hallway"}, UnitPrice: 249.99},
		{SKU: "RUG-002", Name: "Coastal Jute Rug", Keywords: []string{"jute"}, RoomTypes: []string{"living"}, UnitPrice: 129},
	}
}

func TestCatalogService_ItemsFetchesOnce(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, _ := setupCatalog(t, gw)

	items, err := svc.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 1, gw.listCalls)

	// Second call serves the snapshot
	_, err = svc.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, gw.listCalls)
}

func TestCatalogService_SnapshotSurvivesRestart(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, st := setupCatalog(t, gw)
	_, err := svc.Items(context.Background())
	require.NoError(t, err)

	idx, err := search.NewCatalogIndex(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	offline := &fakeCatalogGateway{listErr: domainerrors.Upstream(503, "down")}
	restored := NewCatalogService(offline, st, idx, testLogger())

	items, err := restored.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 0, offline.listCalls)
}

func TestCatalogService_RefreshBumpsGeneration(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, _ := setupCatalog(t, gw)

	before := svc.Generation()
	require.NoError(t, svc.Refresh(context.Background()))
	assert.Greater(t, svc.Generation(), before)
}

func TestCatalogService_GetPrefersSnapshot(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, _ := setupCatalog(t, gw)
	_, err := svc.Items(context.Background())
	require.NoError(t, err)

	item, err := svc.Get(context.Background(), "RUG-001")
	require.NoError(t, err)
	assert.Equal(t, "Heritage Wool Runner", item.Name)
	assert.Equal(t, 0, gw.getCalls)
}

func TestCatalogService_GetLoadsSnapshotFirst(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, _ := setupCatalog(t, gw)

	// Fresh session: the first Get pulls the list, not the single item
	item, err := svc.Get(context.Background(), "RUG-001")
	require.NoError(t, err)
	assert.Equal(t, "Heritage Wool Runner", item.Name)
	assert.Equal(t, 1, gw.listCalls)
	assert.Equal(t, 0, gw.getCalls)
}

func TestCatalogService_GetFallsBackToBackend(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, _ := setupCatalog(t, gw)
	_, err := svc.Items(context.Background())
	require.NoError(t, err)

	// Backend gains an item the snapshot has not seen yet
	gw.items = append(gw.items, domain.Product{SKU: "RUG-003", Name: "Nordic Flatweave"})

	item, err := svc.Get(context.Background(), "RUG-003")
	require.NoError(t, err)
	assert.Equal(t, "Nordic Flatweave", item.Name)
	assert.Equal(t, 1, gw.getCalls)
}

func TestCatalogService_GetRequiresSKU(t *testing.T) {
	gw := &fakeCatalogGateway{}
	svc, _ := setupCatalog(t, gw)

	_, err := svc.Get(context.Background(), "")
	assert.True(t, domainerrors.IsCode(err, domainerrors.CodeValidation))
}

func TestCatalogService_SearchUsesLocalIndex(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, _ := setupCatalog(t, gw)

	params := search.DefaultSearchParams()
	params.Query = "jute"

	result, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "RUG-002", result.Hits[0].SKU)
}

func TestCatalogService_FilterOptions(t *testing.T) {
	gw := &fakeCatalogGateway{items: sampleCatalog()}
	svc, _ := setupCatalog(t, gw)

	opts, err := svc.FilterOptions(context.Background())
	require.NoError(t, err)
	assert.Contains(t, opts.RoomTypes, "hallway")
	assert.Contains(t, opts.RoomTypes, "living")
}
