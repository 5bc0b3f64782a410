package api

import (
	"net/http"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/http/response"
)

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.services.Accounts.Get(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, account, s.logger)
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var account domain.Account
	if err := decodeBody(r, &account); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.services.Accounts.Update(r.Context(), &account); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, account, s.logger)
}
