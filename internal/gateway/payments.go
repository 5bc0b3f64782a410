package gateway

import (
	"context"
	"net/http"
)

// PaymentRequest is the payment submission payload.
type PaymentRequest struct {
	OrderID       string  `json:"orderId"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
}

// SubmitPayment submits payment for an order. The amount is the cart total
// rounded to cents; the backend owns actual settlement.
func (c *Client) SubmitPayment(ctx context.Context, req PaymentRequest) error {
	_, err := c.Do(ctx, http.MethodPost, "/payments/submit", req, true)
	return err
}
