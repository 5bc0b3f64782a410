package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yancarpet/storefront/internal/domain"
)

// CreateOrderRequest is the order submission payload. The idempotency key is
// generated client-side so a resubmitted checkout cannot double-order.
type CreateOrderRequest struct {
	CustomerEmail  string            `json:"customerEmail"`
	Items          []domain.LineItem `json:"items"`
	IdempotencyKey string            `json:"idempotencyKey,omitempty"`
}

// CreateOrder submits a new order and returns the created order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	res, err := c.Do(ctx, http.MethodPost, "/orders", req, true)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := res.Decode(&order); err != nil {
		return nil, err
	}
	if order.OrderID == "" {
		return nil, fmt.Errorf("backend returned order without orderId")
	}
	return &order, nil
}

// GetOrder fetches one order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	res, err := c.get(ctx, "/orders/"+url.PathEscape(orderID), true)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := res.Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderHistory fetches one page of the shopper's order history.
func (c *Client) OrderHistory(ctx context.Context, page, size int) (*domain.OrderPage, error) {
	path := fmt.Sprintf("/orders/history?page=%d&size=%d", page, size)
	res, err := c.get(ctx, path, true)
	if err != nil {
		return nil, err
	}

	// History shares the catalog's shape drift: some revisions serve a bare
	// order array, others the paginated envelope.
	var result domain.OrderPage
	var list []domain.Order
	if err := res.Decode(&list); err == nil {
		result.Orders = list
		result.Page = page
		result.Size = size
		result.Total = len(list)
		return &result, nil
	}
	if err := res.Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateShippingAddress replaces the shipping address on an existing order.
func (c *Client) UpdateShippingAddress(ctx context.Context, orderID string, addr domain.Address) error {
	_, err := c.Do(ctx, http.MethodPut, "/orders/"+url.PathEscape(orderID)+"/shipping-address", addr, true)
	return err
}
