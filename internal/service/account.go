package service

import (
	"context"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/validation"

	domainerrors "github.com/yancarpet/storefront/internal/errors"
)

// AccountGateway is the slice of the backend client profile management needs.
type AccountGateway interface {
	GetAccount(ctx context.Context) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account *domain.Account) error
}

// AccountService manages the signed-in shopper's profile.
type AccountService struct {
	gateway   AccountGateway
	validator *validation.Validator
	logger    *logger.Logger
}

// NewAccountService creates the account service.
func NewAccountService(gw AccountGateway, v *validation.Validator, log *logger.Logger) *AccountService {
	return &AccountService{
		gateway:   gw,
		validator: v,
		logger:    log,
	}
}

// Get fetches the current profile.
func (s *AccountService) Get(ctx context.Context) (*domain.Account, error) {
	return s.gateway.GetAccount(ctx)
}

// Update replaces the profile.
func (s *AccountService) Update(ctx context.Context, account *domain.Account) error {
	if account == nil {
		return domainerrors.Validation("account payload is required")
	}
	if account.Email == "" {
		return domainerrors.Validation("email is required")
	}
	if err := s.validator.Validate(account); err != nil {
		return err
	}

	if err := s.gateway.UpdateAccount(ctx, account); err != nil {
		return err
	}
	s.logger.Info("profile updated", "email", account.Email)
	return nil
}
