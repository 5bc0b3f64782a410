package gateway

import (
	"context"
	"net/http"

	"github.com/yancarpet/storefront/internal/domain"
)

// Credentials is the payload for account creation and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// TokenResponse carries the bearer token issued by the backend.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateAccount registers a new shopper account.
func (c *Client) CreateAccount(ctx context.Context, creds Credentials) error {
	_, err := c.Do(ctx, http.MethodPost, "/account/create", creds, false)
	return err
}

// Login exchanges credentials for a bearer token. The caller stores it.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	res, err := c.Do(ctx, http.MethodPost, "/auth/login", creds, false)
	if err != nil {
		return "", err
	}
	var tr TokenResponse
	if err := res.Decode(&tr); err != nil {
		return "", err
	}
	return tr.Token, nil
}

// GetAccount fetches the signed-in shopper's profile.
func (c *Client) GetAccount(ctx context.Context) (*domain.Account, error) {
	res, err := c.get(ctx, "/account/me", true)
	if err != nil {
		return nil, err
	}
	var account domain.Account
	if err := res.Decode(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount replaces the signed-in shopper's profile.
func (c *Client) UpdateAccount(ctx context.Context, account *domain.Account) error {
	_, err := c.Do(ctx, http.MethodPut, "/account/me", account, true)
	return err
}
