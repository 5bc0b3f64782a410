package providers

import (
	"sync"

	"github.com/samber/do/v2"

	"github.com/yancarpet/storefront/internal/config"
	"github.com/yancarpet/storefront/internal/gateway"
	"github.com/yancarpet/storefront/internal/logger"
)

// TokenRef is a late-bound token source. The gateway client needs a token
// source at construction, but tokens live in the session service, which in
// turn needs the client. The ref breaks the cycle: the client gets the ref
// up front, and the session service is bound into it once built.
type TokenRef struct {
	mu  sync.RWMutex
	src gateway.TokenSource
}

// Token implements gateway.TokenSource. Empty until a source is bound.
func (r *TokenRef) Token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.src == nil {
		return ""
	}
	return r.src.Token()
}

// Bind sets the live token source.
func (r *TokenRef) Bind(src gateway.TokenSource) {
	r.mu.Lock()
	r.src = src
	r.mu.Unlock()
}

// ProvideTokenRef provides the late-bound token source.
func ProvideTokenRef(i do.Injector) (*TokenRef, error) {
	return &TokenRef{}, nil
}

// ProvideGatewayClient provides the backend HTTP client.
func ProvideGatewayClient(i do.Injector) (*gateway.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	tokenRef := do.MustInvoke[*TokenRef](i)

	client := gateway.New(gateway.Options{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.Timeout,
		Tokens:  tokenRef,
		Logger:  log.Logger,
	})

	log.Info("Backend gateway configured", "base_url", cfg.Backend.BaseURL)

	return client, nil
}
