package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yancarpet/storefront/internal/domain"
	"github.com/yancarpet/storefront/internal/gateway"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/store"
	"github.com/yancarpet/storefront/internal/validation"

	domainerrors "github.com/yancarpet/storefront/internal/errors"
)

// OrderGateway is the slice of the backend client checkout and order history
// need.
type OrderGateway interface {
	CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	OrderHistory(ctx context.Context, page, size int) (*domain.OrderPage, error)
	SubmitPayment(ctx context.Context, req gateway.PaymentRequest) error
	UpdateShippingAddress(ctx context.Context, orderID string, addr domain.Address) error
}

// paymentMethodCard is the only payment method the backend accepts today.
const paymentMethodCard = "CARD"

// OrderService drives checkout and order history. Card details are validated
// locally and never leave the process: the backend sees only the order and a
// payment amount.
type OrderService struct {
	gateway   OrderGateway
	cart      *CartService
	session   *SessionService
	validator *validation.Validator
	store     *store.Store
	logger    *logger.Logger
}

// NewOrderService creates the order service.
func NewOrderService(gw OrderGateway, cart *CartService, session *SessionService, v *validation.Validator, st *store.Store, log *logger.Logger) *OrderService {
	return &OrderService{
		gateway:   gw,
		cart:      cart,
		session:   session,
		validator: v,
		store:     st,
		logger:    log,
	}
}

// CheckoutResult reports what checkout achieved. PaymentSubmitted is false
// when the order was created but the payment call failed; the order then
// exists upstream and the cart is kept so the shopper can retry.
type CheckoutResult struct {
	Order            *domain.Order `json:"order"`
	PaymentSubmitted bool          `json:"paymentSubmitted"`
}

// Checkout turns the cart into an order and submits payment for it.
//
// The sequence is: session check, card validation, order creation with a
// client-generated idempotency key, payment submission, then cart clear.
// The cart is cleared only after payment succeeds.
func (s *OrderService) Checkout(ctx context.Context, card domain.PaymentCard) (*CheckoutResult, error) {
	if !s.session.IsAuthenticated() {
		return nil, domainerrors.AuthRequired("please sign in before checking out")
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domainerrors.Validation("cart is empty")
	}

	if err := s.validator.Validate(card); err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		CustomerEmail:  s.session.Email(),
		Items:          items,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The amount is computed from the same snapshot the order carries, so a
	// cart mutation during the order call cannot desync the two.
	amount := domain.RoundTotal(items)
	err = s.gateway.SubmitPayment(ctx, gateway.PaymentRequest{
		OrderID:       order.OrderID,
		PaymentMethod: paymentMethodCard,
		Amount:        amount,
	})
	if err != nil {
		s.logger.Error("payment failed after order creation", "order_id", order.OrderID, "error", err)
		return &CheckoutResult{Order: order, PaymentSubmitted: false},
			fmt.Errorf("order %s created but payment failed: %w", order.OrderID, err)
	}

	s.cart.Clear()
	s.logger.Info("checkout complete", "order_id", order.OrderID, "amount", amount)

	return &CheckoutResult{Order: order, PaymentSubmitted: true}, nil
}

// Get fetches one order by ID.
func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, domainerrors.Validation("order id is required")
	}
	return s.gateway.GetOrder(ctx, orderID)
}

// History fetches one page of order history. The first page is cached so it
// can be served when the backend is unreachable.
func (s *OrderService) History(ctx context.Context, page, size int) (*domain.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	result, err := s.gateway.OrderHistory(ctx, page, size)
	if err != nil {
		if page == 1 {
			var cached domain.OrderPage
			if s.store.Load(store.KeyOrders, &cached) {
				s.logger.Warn("serving cached order history", "error", err)
				return &cached, nil
			}
		}
		return nil, err
	}

	if page == 1 {
		s.store.Save(store.KeyOrders, result)
	}
	return result, nil
}

// UpdateShippingAddress replaces the shipping address on an existing order.
func (s *OrderService) UpdateShippingAddress(ctx context.Context, orderID string, addr domain.Address) error {
	if orderID == "" {
		return domainerrors.Validation("order id is required")
	}
	return s.gateway.UpdateShippingAddress(ctx, orderID, addr)
}
