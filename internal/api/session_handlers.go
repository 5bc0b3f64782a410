package api

import (
	"net/http"

	"github.com/yancarpet/storefront/internal/http/response"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

func (s *Server) sessionState() sessionResponse {
	return sessionResponse{
		Authenticated: s.services.Session.IsAuthenticated(),
		Email:         s.services.Session.Email(),
	}
}

func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, s.sessionState(), s.logger)
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.services.Session.SignUp(r.Context(), req.Email, req.Password, req.Name); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	s.syncAfterSignIn(r)
	response.Created(w, s.sessionState(), s.logger)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if err := s.services.Session.SignIn(r.Context(), req.Email, req.Password); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	s.syncAfterSignIn(r)
	response.Success(w, s.sessionState(), s.logger)
}

func (s *Server) handleSignOut(w http.ResponseWriter, _ *http.Request) {
	s.services.Session.SignOut()
	response.Success(w, s.sessionState(), s.logger)
}

// syncAfterSignIn reconciles favorites with the account that just signed in.
// Failures are logged, not surfaced: the sign-in itself succeeded.
func (s *Server) syncAfterSignIn(r *http.Request) {
	if err := s.services.Favorites.Refresh(r.Context()); err != nil {
		s.logger.Warn("favorites refresh after sign-in failed", "error", err)
	}
}
