package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/yancarpet/storefront/internal/domain"
)

// rawItem tolerates the backend's legacy field name: older revisions serve
// the unit price as "price" instead of "unitPrice".
type rawItem struct {
	domain.Product
	LegacyPrice *float64 `json:"price"`
}

func (r *rawItem) product() domain.Product {
	p := r.Product
	if p.UnitPrice == 0 && r.LegacyPrice != nil {
		p.UnitPrice = *r.LegacyPrice
	}
	return p
}

// itemEnvelope covers the two wrapped list shapes the backend serves:
// {"items": [...]} and the paginated {"content": [...]}.
type itemEnvelope struct {
	Items   []rawItem `json:"items"`
	Content []rawItem `json:"content"`
}

// NormalizeItems decodes a catalog list response into a canonical product
// slice. The backend alternates between three shapes across revisions: a
// bare array, an {items} wrapper, and a paginated {content} envelope. This
// is the only place that three-way branch lives.
func NormalizeItems(raw []byte) ([]domain.Product, error) {
	var list []rawItem
	if err := json.Unmarshal(raw, &list); err == nil {
		return toProducts(list), nil
	}

	var envelope itemEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("unrecognized item list shape: %w", err)
	}
	if envelope.Items != nil {
		return toProducts(envelope.Items), nil
	}
	return toProducts(envelope.Content), nil
}

func toProducts(items []rawItem) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for i := range items {
		products = append(products, items[i].product())
	}
	return products
}
