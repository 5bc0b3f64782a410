// Package di provides dependency injection configuration for the storefront
// session daemon.
package di

import (
	"context"
	"time"

	"github.com/samber/do/v2"

	"github.com/yancarpet/storefront/internal/config"
	"github.com/yancarpet/storefront/internal/di/providers"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/media"
	"github.com/yancarpet/storefront/internal/service"
)

// startupSyncTimeout bounds the background catalog and favorites sync that
// runs once at boot.
const startupSyncTimeout = 2 * time.Minute

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideCatalogIndex)

	// Backend gateway
	do.Provide(injector, providers.ProvideTokenRef)
	do.Provide(injector, providers.ProvideGatewayClient)

	// Validation
	do.Provide(injector, providers.ProvideValidator)

	// Session engine services
	do.Provide(injector, providers.ProvideSessionService)
	do.Provide(injector, providers.ProvideCartService)
	do.Provide(injector, providers.ProvideFavoritesService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideRecommendationService)
	do.Provide(injector, providers.ProvideOrderService)
	do.Provide(injector, providers.ProvideAccountService)

	// Media proxy
	do.Provide(injector, providers.ProvideMediaRateLimiter)
	do.Provide(injector, providers.ProvideMediaService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the daemon is serving.
// This triggers lazy initialization of the full dependency graph, then kicks
// off the startup sync: catalog refresh and favorites reconcile, both
// best-effort since the backend may be unreachable.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	log := do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.CatalogIndexHandle](injector)

	catalog := do.MustInvoke[*service.CatalogService](injector)
	favorites := do.MustInvoke[*service.FavoritesService](injector)
	_ = do.MustInvoke[*media.Service](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), startupSyncTimeout)
		defer cancel()

		if err := catalog.Refresh(ctx); err != nil {
			log.Warn("startup catalog refresh failed, serving cached snapshot", "error", err)
		}
		if err := favorites.Refresh(ctx); err != nil {
			log.Warn("startup favorites refresh failed, keeping local set", "error", err)
		}
	}()

	return nil
}
