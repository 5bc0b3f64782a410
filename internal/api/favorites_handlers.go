package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/http/response"
)

type favoritesResponse struct {
	Entries []domain.FavoriteEntry `json:"entries"`
	Count   int                    `json:"count"`
}

type toggleResponse struct {
	SKU       string `json:"sku"`
	Favorited bool   `json:"favorited"`
}

func (s *Server) handleGetFavorites(w http.ResponseWriter, _ *http.Request) {
	entries := s.services.Favorites.Entries()
	response.Success(w, favoritesResponse{Entries: entries, Count: len(entries)}, s.logger)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	favorited := s.services.Favorites.Toggle(r.Context(), sku)
	response.Success(w, toggleResponse{SKU: sku, Favorited: favorited}, s.logger)
}

func (s *Server) handleRefreshFavorites(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Favorites.Refresh(r.Context()); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	entries := s.services.Favorites.Entries()
	response.Success(w, favoritesResponse{Entries: entries, Count: len(entries)}, s.logger)
}
