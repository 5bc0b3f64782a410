package providers

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/yancarpet/storefront/internal/api"
	"github.com/yancarpet/storefront/internal/config"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/media"
	"github.com/yancarpet/storefront/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the local facade server, started in the
// background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := api.Services{
		Session:     do.MustInvoke[*service.SessionService](i),
		Cart:        do.MustInvoke[*service.CartService](i),
		Favorites:   do.MustInvoke[*service.FavoritesService](i),
		Catalog:     do.MustInvoke[*service.CatalogService](i),
		Recommender: do.MustInvoke[*service.RecommendationService](i),
		Orders:      do.MustInvoke[*service.OrderService](i),
		Accounts:    do.MustInvoke[*service.AccountService](i),
		Media:       do.MustInvoke[*media.Service](i),
	}

	handler := api.NewServer(services, cfg.Server.CORSOrigins, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
