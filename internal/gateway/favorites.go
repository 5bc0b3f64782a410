package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// favoriteEntry tolerates both list shapes the backend has served for
// favorites: bare SKU strings and {sku, addedAt} objects.
type favoriteEntry struct {
	SKU string `json:"sku"`
}

func (f *favoriteEntry) UnmarshalJSON(data []byte) error {
	var sku string
	if err := json.Unmarshal(data, &sku); err == nil {
		f.SKU = sku
		return nil
	}
	type plain favoriteEntry
	return json.Unmarshal(data, (*plain)(f))
}

// ListFavorites fetches the server-side favorites list as SKUs.
func (c *Client) ListFavorites(ctx context.Context) ([]string, error) {
	res, err := c.get(ctx, "/favorites", true)
	if err != nil {
		return nil, err
	}
	var entries []favoriteEntry
	if err := res.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	skus := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.SKU != "" {
			skus = append(skus, e.SKU)
		}
	}
	return skus, nil
}

// AddFavorite adds a SKU to the server-side favorites.
func (c *Client) AddFavorite(ctx context.Context, sku string) error {
	_, err := c.Do(ctx, http.MethodPost, "/favorites/"+url.PathEscape(sku), nil, true)
	return err
}

// RemoveFavorite removes a SKU from the server-side favorites.
// Idempotent on the backend.
func (c *Client) RemoveFavorite(ctx context.Context, sku string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/favorites/"+url.PathEscape(sku), nil, true)
	return err
}

// ToggleFavorite flips server-side membership for a SKU and returns the
// resulting state when the backend reports it.
func (c *Client) ToggleFavorite(ctx context.Context, sku string) (bool, error) {
	res, err := c.Do(ctx, http.MethodPost, "/favorites/"+url.PathEscape(sku)+"/toggle", nil, true)
	if err != nil {
		return false, err
	}
	var out struct {
		Favorited bool `json:"favorited"`
	}
	if res.IsJSON() && len(res.Raw) > 0 {
		if err := res.Decode(&out); err != nil {
			return false, err
		}
	}
	return out.Favorited, nil
}
