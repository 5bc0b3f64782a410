package domain

import (
	"encoding/json"
	"slices"
	"strings"
)

// Product is a catalog item as served by the shop backend.
// Prices are quoted per unit (the backend defaults to usd/sqm).
type Product struct {
	SKU         string     `json:"sku"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	UnitPrice   float64    `json:"unitPrice"`
	Unit        string     `json:"unit,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Material    string     `json:"material,omitempty"`
	Color       string     `json:"color,omitempty"`
	RoomTypes   StringList `json:"roomType,omitempty"`
	Keywords    StringList `json:"keywords,omitempty"`
	SizeOptions []string   `json:"sizeOptions,omitempty"`
}

// StringList is a []string that also accepts a bare JSON string on decode.
// The backend is inconsistent about whether roomType is a string or an array.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = StringList{single}
	return nil
}

// FilterOptions are the distinct facet values aggregated from a product list,
// used to populate the catalog filter drawer.
type FilterOptions struct {
	Colors    []string `json:"colors"`
	Materials []string `json:"materials"`
	RoomTypes []string `json:"roomTypes"`
}

// splitFacet splits a comma- or slash-delimited facet value into trimmed parts.
// Catalog entries like "wool/nylon" or "red, orange" count as multiple options.
func splitFacet(raw string) []string {
	var out []string
	for part := range strings.FieldsFuncSeq(raw, func(r rune) bool {
		return r == ',' || r == '/'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AggregateFilterOptions collects the distinct colors, materials, and room
// types present in a product list, sorted for stable display.
func AggregateFilterOptions(products []Product) FilterOptions {
	colors := make(map[string]struct{})
	materials := make(map[string]struct{})
	rooms := make(map[string]struct{})

	for i := range products {
		p := &products[i]
		for _, c := range splitFacet(p.Color) {
			colors[c] = struct{}{}
		}
		for _, m := range splitFacet(p.Material) {
			materials[m] = struct{}{}
		}
		for _, r := range p.RoomTypes {
			if r = strings.TrimSpace(r); r != "" {
				rooms[r] = struct{}{}
			}
		}
	}

	return FilterOptions{
		Colors:    sortedKeys(colors),
		Materials: sortedKeys(materials),
		RoomTypes: sortedKeys(rooms),
	}
}

// sortedKeys returns the keys of a set in sorted order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
