package providers

import (
	"github.com/samber/do/v2"

	"github.com/yancarpet/storefront/internal/config"
	"github.com/yancarpet/storefront/internal/gateway"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/media"
	"github.com/yancarpet/storefront/internal/ratelimit"
)

// RateLimiterHandle wraps the keyed rate limiter with shutdown capability.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideMediaRateLimiter provides the per-host limiter for image fetches.
func ProvideMediaRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	limiter := ratelimit.New(cfg.Media.UpstreamRPS, cfg.Media.UpstreamBurst)
	return &RateLimiterHandle{KeyedRateLimiter: limiter}, nil
}

// ProvideMediaService provides the cached media proxy.
func ProvideMediaService(i do.Injector) (*media.Service, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return media.NewService(gw, storeHandle.Store, limiterHandle.KeyedRateLimiter, log), nil
}
