// Package service holds the session engine: in-memory state guarded by
// mutexes, written through to the local store after every mutation, with the
// gateway as the only path to the backend.
package service

import (
	"context"
	"sync"

	"github.com/yancarpet/storefront/internal/gateway"
	"github.com/yancarpet/storefront/internal/id"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/store"

	domainerrors "github.com/yancarpet/storefront/internal/errors"
)

// SessionGateway is the slice of the backend client the session needs.
type SessionGateway interface {
	CreateAccount(ctx context.Context, creds gateway.Credentials) error
	Login(ctx context.Context, creds gateway.Credentials) (string, error)
}

// SessionService owns the shopper's authentication state. It implements
// gateway.TokenSource so the backend client always sees the current token.
type SessionService struct {
	mu      sync.RWMutex
	gateway SessionGateway
	store   *store.Store
	logger  *logger.Logger

	token    string
	email    string
	clientID string
}

// NewSessionService creates the session service, restoring any persisted
// token so a restart keeps the shopper signed in.
func NewSessionService(gw SessionGateway, st *store.Store, log *logger.Logger) *SessionService {
	s := &SessionService{
		gateway: gw,
		store:   st,
		logger:  log,
	}

	if raw, ok := st.LoadRaw(store.KeyToken); ok {
		s.token = string(raw)
	}
	if raw, ok := st.LoadRaw(store.KeyEmail); ok {
		s.email = string(raw)
	}
	if raw, ok := st.LoadRaw(store.KeyClientID); ok {
		s.clientID = string(raw)
	} else {
		s.clientID = id.MustGenerate("client")
		st.SaveRaw(store.KeyClientID, []byte(s.clientID))
	}
	if s.token != "" {
		log.Info("restored session", "email", s.email, "client_id", s.clientID)
	}

	return s
}

// ClientID identifies this install. Generated once, it survives both
// restarts and sign-outs.
func (s *SessionService) ClientID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientID
}

// Token implements gateway.TokenSource. Empty when signed out.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Email returns the signed-in shopper's email, or "".
func (s *SessionService) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// IsAuthenticated reports whether a session token is present.
func (s *SessionService) IsAuthenticated() bool {
	return s.Token() != ""
}

// SignUp registers a new account and signs in with the same credentials.
func (s *SessionService) SignUp(ctx context.Context, email, password, name string) error {
	if email == "" || password == "" {
		return domainerrors.Validation("email and password are required")
	}

	creds := gateway.Credentials{Email: email, Password: password, Name: name}
	if err := s.gateway.CreateAccount(ctx, creds); err != nil {
		return err
	}

	return s.SignIn(ctx, email, password)
}

// SignIn exchanges credentials for a token and persists the session.
func (s *SessionService) SignIn(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domainerrors.Validation("email and password are required")
	}

	token, err := s.gateway.Login(ctx, gateway.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	if token == "" {
		return domainerrors.Internal("backend returned an empty token")
	}

	s.mu.Lock()
	s.token = token
	s.email = email
	s.store.SaveRaw(store.KeyToken, []byte(token))
	s.store.SaveRaw(store.KeyEmail, []byte(email))
	s.mu.Unlock()

	s.logger.Info("signed in", "email", email)
	return nil
}

// SignOut drops the session. Cart and favorites stay local; cached order
// history belongs to the account and is removed with it.
func (s *SessionService) SignOut() {
	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.store.Delete(store.KeyToken)
	s.store.Delete(store.KeyEmail)
	s.store.Delete(store.KeyOrders)
	s.mu.Unlock()

	s.logger.Info("signed out")
}
