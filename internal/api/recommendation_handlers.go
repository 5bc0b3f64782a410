package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yancarpet/storefront/internal/http/response"
)

func (s *Server) handleRecommendForCart(w http.ResponseWriter, r *http.Request) {
	recs, err := s.services.Recommender.ForCart(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, recs, s.logger)
}

func (s *Server) handleRecommendForItem(w http.ResponseWriter, r *http.Request) {
	recs, err := s.services.Recommender.ForItem(r.Context(), chi.URLParam(r, "sku"), queryInt(r, "limit", 0))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, recs, s.logger)
}
