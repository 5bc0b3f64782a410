package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/http/response"
)

type addToCartRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartResponse is the cart view every mutation returns, so clients never
// need a follow-up read.
type cartResponse struct {
	Items []domain.LineItem `json:"items"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}

func (s *Server) cartView(items []domain.LineItem) cartResponse {
	return cartResponse{
		Items: items,
		Total: s.services.Cart.TotalRounded(),
		Count: s.services.Cart.Count(),
	}
}

func (s *Server) handleGetCart(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, s.cartView(s.services.Cart.Items()), s.logger)
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	// The cart stores a copy of the product, so look it up first. The price
	// in effect now is the price the line keeps.
	product, err := s.services.Catalog.Get(r.Context(), req.SKU)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	items := s.services.Cart.Add(*product, req.Quantity)
	response.Success(w, s.cartView(items), s.logger)
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	items := s.services.Cart.SetQuantity(chi.URLParam(r, "sku"), req.Quantity)
	response.Success(w, s.cartView(items), s.logger)
}

func (s *Server) handleIncrement(w http.ResponseWriter, r *http.Request) {
	items := s.services.Cart.Increment(chi.URLParam(r, "sku"))
	response.Success(w, s.cartView(items), s.logger)
}

func (s *Server) handleDecrement(w http.ResponseWriter, r *http.Request) {
	items := s.services.Cart.Decrement(chi.URLParam(r, "sku"))
	response.Success(w, s.cartView(items), s.logger)
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	items := s.services.Cart.Remove(chi.URLParam(r, "sku"))
	response.Success(w, s.cartView(items), s.logger)
}

func (s *Server) handleClearCart(w http.ResponseWriter, _ *http.Request) {
	s.services.Cart.Clear()
	response.Success(w, s.cartView(s.services.Cart.Items()), s.logger)
}
