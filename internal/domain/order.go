package domain

import "time"

// Order is an order as returned by the backend's order endpoints.
type Order struct {
	OrderID       string     `json:"orderId"`
	CustomerEmail string     `json:"customerEmail"`
	Items         []LineItem `json:"items"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status,omitempty"`
	CreatedAt     time.Time  `json:"createdAt,omitzero"`
}

// OrderPage is one page of order history.
type OrderPage struct {
	Orders []Order `json:"orders"`
	Page   int     `json:"page"`
	Size   int     `json:"size"`
	Total  int     `json:"total"`
}

// Address is a shipping or billing address on the account profile.
type Address struct {
	Name       string `json:"name,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Account is the shopper's profile as held by the backend.
type Account struct {
	Email                string  `json:"email" validate:"required,email"`
	Name                 string  `json:"name,omitempty"`
	ShippingAddress      Address `json:"shippingAddress,omitzero"`
	BillingAddress       Address `json:"billingAddress,omitzero"`
	DefaultPaymentMethod string  `json:"defaultPaymentMethod,omitempty"`
}

// PaymentCard holds raw card fields as entered at checkout. Validation and
// expiry normalization happen locally before anything is submitted.
type PaymentCard struct {
	Number string `json:"number" validate:"required,cardnumber"`
	CVV    string `json:"cvv" validate:"required,cardcvv"`
	Expiry string `json:"expiry" validate:"required,cardexpiry"`
	Holder string `json:"holder,omitempty"`
}
