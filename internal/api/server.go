// Package api provides the local HTTP facade over the session engine.
// Storefront UIs talk to this server; it never exposes the backend directly.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/yancarpet/storefront/internal/media"
	"github.com/yancarpet/storefront/internal/service"
)

// Services bundles the session engine services the handlers dispatch to.
type Services struct {
	Session     *service.SessionService
	Cart        *service.CartService
	Favorites   *service.FavoritesService
	Catalog     *service.CatalogService
	Recommender *service.RecommendationService
	Orders      *service.OrderService
	Accounts    *service.AccountService
	Media       *media.Service
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	services    Services
	corsOrigins []string
	router      *chi.Mux
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(services Services, corsOrigins []string, logger *slog.Logger) *Server {
	s := &Server{
		services:    services,
		corsOrigins: corsOrigins,
		router:      chi.NewRouter(),
		logger:      logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		// Session endpoints.
		r.Route("/session", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Post("/signup", s.handleSignUp)
			r.Post("/login", s.handleSignIn)
			r.Post("/logout", s.handleSignOut)
		})

		// Catalog browsing (public against the backend).
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/items", s.handleListItems)
			r.Get("/items/{sku}", s.handleGetItem)
			r.Get("/search", s.handleSearch)
			r.Get("/search/remote", s.handleSearchRemote)
			r.Get("/filters", s.handleFilterOptions)
			r.Post("/refresh", s.handleCatalogRefresh)
		})

		// Cart ledger.
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleGetCart)
			r.Delete("/", s.handleClearCart)
			r.Post("/items", s.handleAddToCart)
			r.Put("/items/{sku}", s.handleSetQuantity)
			r.Post("/items/{sku}/increment", s.handleIncrement)
			r.Post("/items/{sku}/decrement", s.handleDecrement)
			r.Delete("/items/{sku}", s.handleRemoveFromCart)
		})

		// Favorites.
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", s.handleGetFavorites)
			r.Post("/refresh", s.handleRefreshFavorites)
			r.Post("/{sku}/toggle", s.handleToggleFavorite)
		})

		// Recommendations.
		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", s.handleRecommendForCart)
			r.Get("/item/{sku}", s.handleRecommendForItem)
		})

		// Checkout and orders.
		r.Post("/checkout", s.handleCheckout)
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", s.handleOrderHistory)
			r.Get("/{id}", s.handleGetOrder)
			r.Put("/{id}/shipping-address", s.handleUpdateShippingAddress)
		})

		// Account profile.
		r.Route("/account", func(r chi.Router) {
			r.Get("/", s.handleGetAccount)
			r.Put("/", s.handleUpdateAccount)
		})

		// Cached media proxy.
		r.Get("/media", s.handleGetMedia)
	})
}
