package api

import (
	"net/http"

	"github.com/yancarpet/storefront/internal/http/response"
)

type healthResponse struct {
	Status            string `json:"status"`
	ClientID          string `json:"clientId"`
	Authenticated     bool   `json:"authenticated"`
	CartItems         int    `json:"cartItems"`
	Favorites         int    `json:"favorites"`
	CatalogGeneration uint64 `json:"catalogGeneration"`
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, healthResponse{
		Status:            "ok",
		ClientID:          s.services.Session.ClientID(),
		Authenticated:     s.services.Session.IsAuthenticated(),
		CartItems:         s.services.Cart.Count(),
		Favorites:         s.services.Favorites.Len(),
		CatalogGeneration: s.services.Catalog.Generation(),
	}, s.logger)
}
