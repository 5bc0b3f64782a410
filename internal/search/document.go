// Package search provides full-text catalog search backed by Bleve.
//
// The catalog is a cached snapshot of the backend's item list, so the index
// is memory-only and rebuilt whenever the snapshot refreshes. Nothing here
// touches disk.
package search

import (
	"strings"

	"github.com/yancarpet/storefront/internal/domain"
)

// CatalogDocument is the indexed representation of a catalog item.
type CatalogDocument struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Material    string   `json:"material"`
	Color       string   `json:"color"`
	RoomTypes   []string `json:"room_types"`
	Keywords    []string `json:"keywords"`
	UnitPrice   float64  `json:"unit_price"`
}

// DocumentFromProduct converts a catalog item to its indexed form.
// Facet fields are lowercased so term queries match regardless of how the
// backend capitalizes them.
func DocumentFromProduct(p *domain.Product) *CatalogDocument {
	return &CatalogDocument{
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Material:    strings.ToLower(p.Material),
		Color:       strings.ToLower(p.Color),
		RoomTypes:   lowerAll(p.RoomTypes),
		Keywords:    lowerAll(p.Keywords),
		UnitPrice:   p.UnitPrice,
	}
}

// ToMap converts the document to a map so indexed field names match the
// mapping exactly.
func (d *CatalogDocument) ToMap() map[string]any {
	return map[string]any{
		"sku":         d.SKU,
		"name":        d.Name,
		"description": d.Description,
		"material":    d.Material,
		"color":       d.Color,
		"room_types":  d.RoomTypes,
		"keywords":    d.Keywords,
		"unit_price":  d.UnitPrice,
	}
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
