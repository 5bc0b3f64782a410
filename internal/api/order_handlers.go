package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/http/response"
)

type checkoutRequest struct {
	Card domain.PaymentCard `json:"card"`
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	result, err := s.services.Orders.Checkout(r.Context(), req.Card)
	if err != nil {
		// Order-created-but-payment-failed still carries a result the
		// client needs, so it rides along on the error response.
		if result != nil {
			response.JSON(w, http.StatusBadGateway, result, s.logger)
			return
		}
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, result, s.logger)
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	page, err := s.services.Orders.History(r.Context(), queryInt(r, "page", 1), queryInt(r, "size", 20))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, page, s.logger)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := s.services.Orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, order, s.logger)
}

func (s *Server) handleUpdateShippingAddress(w http.ResponseWriter, r *http.Request) {
	var addr domain.Address
	if err := decodeBody(r, &addr); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.services.Orders.UpdateShippingAddress(r.Context(), chi.URLParam(r, "id"), addr); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}
