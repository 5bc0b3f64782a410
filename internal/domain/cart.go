package domain

import "math"

// LineItem is one cart entry. The unit price is captured when the item is
// first added and is never refreshed from the catalog (price-lock).
type LineItem struct {
	SKU       string     `json:"sku"`
	Name      string     `json:"name"`
	UnitPrice float64    `json:"price"`
	Quantity  int        `json:"quantity"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	RoomTypes StringList `json:"roomType,omitempty"`
	Keywords  StringList `json:"keywords,omitempty"`
}

// Subtotal returns unit price times quantity.
func (li *LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// Cart is an ordered ledger of line items, one per SKU, insertion order.
// All quantities are at least 1; totals are recomputed from current state.
type Cart struct {
	Items []LineItem `json:"items"`
}

// find returns the index of the line item with the given SKU, or -1.
func (c *Cart) find(sku string) int {
	for i := range c.Items {
		if c.Items[i].SKU == sku {
			return i
		}
	}
	return -1
}

// Add merges qty of the product into the cart. If the SKU is already present
// its quantity is incremented; the unit price stays as captured at first add.
// A qty below 1 is treated as 1.
func (c *Cart) Add(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	if i := c.find(p.SKU); i >= 0 {
		c.Items[i].Quantity += qty
		return
	}
	c.Items = append(c.Items, LineItem{
		SKU:       p.SKU,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Quantity:  qty,
		ImageURL:  p.ImageURL,
		RoomTypes: p.RoomTypes,
		Keywords:  p.Keywords,
	})
}

// SetQuantity sets the quantity for a SKU, clamped to a minimum of 1.
// No-op if the SKU is not in the cart.
func (c *Cart) SetQuantity(sku string, qty int) {
	if i := c.find(sku); i >= 0 {
		c.Items[i].Quantity = max(1, qty)
	}
}

// Increment raises the quantity for a SKU by one. No-op if absent.
func (c *Cart) Increment(sku string) {
	if i := c.find(sku); i >= 0 {
		c.Items[i].Quantity++
	}
}

// Decrement lowers the quantity for a SKU by one, flooring at 1.
// Removing a line item is a distinct explicit operation.
func (c *Cart) Decrement(sku string) {
	if i := c.find(sku); i >= 0 {
		c.Items[i].Quantity = max(1, c.Items[i].Quantity-1)
	}
}

// Remove deletes the line item for a SKU. Idempotent if absent.
func (c *Cart) Remove(sku string) {
	if i := c.find(sku); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear empties the ledger.
func (c *Cart) Clear() {
	c.Items = nil
}

// Contains reports whether a SKU is in the cart.
func (c *Cart) Contains(sku string) bool {
	return c.find(sku) >= 0
}

// Get returns a copy of the line item for a SKU.
func (c *Cart) Get(sku string) (LineItem, bool) {
	if i := c.find(sku); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

// Total returns the sum of unit price times quantity over all line items.
func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].Subtotal()
	}
	return total
}

// TotalRounded returns the cart total rounded to two decimals, as submitted
// to the payment endpoint.
func (c *Cart) TotalRounded() float64 {
	return RoundTotal(c.Items)
}

// RoundTotal sums the subtotals of a line item snapshot and rounds to two
// decimals.
func RoundTotal(items []LineItem) float64 {
	var total float64
	for i := range items {
		total += items[i].Subtotal()
	}
	return math.Round(total*100) / 100
}

// Count returns the sum of quantities over all line items.
func (c *Cart) Count() int {
	var count int
	for i := range c.Items {
		count += c.Items[i].Quantity
	}
	return count
}

// SKUs returns the SKUs in insertion order.
func (c *Cart) SKUs() []string {
	skus := make([]string, len(c.Items))
	for i := range c.Items {
		skus[i] = c.Items[i].SKU
	}
	return skus
}

// Snapshot returns a deep copy of the line items for callers that must not
// observe later mutations (e.g. an order payload being serialized).
func (c *Cart) Snapshot() []LineItem {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return items
}
