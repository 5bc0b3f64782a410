package gateway

import (
	"context"
	"net/url"

	"github.com/yancarpet/storefront/internal/domain"
)

// ListItems fetches the full catalog.
func (c *Client) ListItems(ctx context.Context) ([]domain.Product, error) {
	res, err := c.get(ctx, "/items", false)
	if err != nil {
		return nil, err
	}
	return NormalizeItems(res.Raw)
}

// SearchItems runs a backend keyword search. An empty query returns the
// backend's default listing.
func (c *Client) SearchItems(ctx context.Context, query string) ([]domain.Product, error) {
	res, err := c.get(ctx, "/items/search?q="+url.QueryEscape(query), false)
	if err != nil {
		return nil, err
	}
	return NormalizeItems(res.Raw)
}

// GetItem fetches one catalog item by SKU.
func (c *Client) GetItem(ctx context.Context, sku string) (*domain.Product, error) {
	res, err := c.get(ctx, "/items/"+url.PathEscape(sku), false)
	if err != nil {
		return nil, err
	}
	var item rawItem
	if err := res.Decode(&item); err != nil {
		return nil, err
	}
	p := item.product()
	return &p, nil
}
