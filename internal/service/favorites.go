package service

import (
	"context"
	"sync"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/store"
)

// FavoritesGateway is the slice of the backend client favorites sync needs.
type FavoritesGateway interface {
	ListFavorites(ctx context.Context) ([]string, error)
	AddFavorite(ctx context.Context, sku string) error
	RemoveFavorite(ctx context.Context, sku string) error
	ToggleFavorite(ctx context.Context, sku string) (bool, error)
}

// Authenticator reports whether a session token is present.
type Authenticator interface {
	IsAuthenticated() bool
}

// FavoritesService owns the favorites set. The local set is authoritative
// for display; when signed in, toggles are pushed to the backend and a
// failed push leaves the optimistic local value standing until the next
// successful refresh reconciles it.
type FavoritesService struct {
	mu      sync.Mutex
	favs    domain.Favorites
	gateway FavoritesGateway
	session Authenticator
	store   *store.Store
	logger  *logger.Logger
}

// NewFavoritesService creates the favorites service, restoring the persisted
// set.
func NewFavoritesService(gw FavoritesGateway, session Authenticator, st *store.Store, log *logger.Logger) *FavoritesService {
	s := &FavoritesService{
		gateway: gw,
		session: session,
		store:   st,
		logger:  log,
	}
	if st.Load(store.KeyFavorites, &s.favs) && s.favs.Len() > 0 {
		log.Info("restored favorites", "count", s.favs.Len())
	}
	return s
}

func (s *FavoritesService) persist() {
	s.store.Save(store.KeyFavorites, &s.favs)
}

// Has reports whether a SKU is favorited. Unknown SKUs are simply not
// favorites, never an error.
func (s *FavoritesService) Has(sku string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favs.Has(sku)
}

// SKUs returns the favorited SKUs in insertion order.
func (s *FavoritesService) SKUs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favs.SKUs()
}

// Entries returns a snapshot of the favorite entries with their sync state.
func (s *FavoritesService) Entries() []domain.FavoriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FavoriteEntry, len(s.favs.Entries))
	copy(out, s.favs.Entries)
	return out
}

// Toggle flips membership for a SKU and returns the resulting local state.
// The local flip always succeeds and persists immediately. When signed in,
// the change is pushed to the backend: an add goes through the toggle
// endpoint, a removal through an explicit delete. A push failure is logged
// and the entry marked for replay, but the shopper's view does not revert.
func (s *FavoritesService) Toggle(ctx context.Context, sku string) bool {
	s.mu.Lock()
	nowFavorite := s.favs.Toggle(sku)
	if nowFavorite && s.session.IsAuthenticated() {
		s.favs.MarkState(sku, domain.SyncInFlight)
	}
	s.persist()
	s.mu.Unlock()

	if !s.session.IsAuthenticated() {
		return nowFavorite
	}

	var err error
	if nowFavorite {
		_, err = s.gateway.ToggleFavorite(ctx, sku)
	} else {
		err = s.gateway.RemoveFavorite(ctx, sku)
	}

	s.mu.Lock()
	if err != nil {
		s.logger.Warn("favorite sync failed, keeping local value", "sku", sku, "error", err)
		s.favs.MarkState(sku, domain.SyncFailedOptimistic)
	} else {
		s.favs.MarkState(sku, domain.SyncSynced)
	}
	s.persist()
	s.mu.Unlock()

	return nowFavorite
}

// Refresh pulls the server's favorites list and reconciles the local set
// with it. Entries whose last push failed are replayed first so they are not
// lost to the reconcile. No-op when signed out.
func (s *FavoritesService) Refresh(ctx context.Context) error {
	if !s.session.IsAuthenticated() {
		return nil
	}

	s.mu.Lock()
	pending := s.favs.PendingSKUs()
	s.mu.Unlock()

	for _, sku := range pending {
		if err := s.gateway.AddFavorite(ctx, sku); err != nil {
			s.logger.Warn("favorite replay failed", "sku", sku, "error", err)
		}
	}

	serverSKUs, err := s.gateway.ListFavorites(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.favs.Reconcile(serverSKUs)
	s.persist()
	s.mu.Unlock()

	s.logger.Debug("favorites reconciled", "count", len(serverSKUs))
	return nil
}

// Len returns the number of favorites.
func (s *FavoritesService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favs.Len()
}
