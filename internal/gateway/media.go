package gateway

import (
	"context"
	"net/url"
)

// FetchMedia retrieves an image through the backend's media proxy and
// returns the bytes with their content type. Pass-through: no decoding.
func (c *Client) FetchMedia(ctx context.Context, imageURL string) ([]byte, string, error) {
	res, err := c.get(ctx, "/media/proxy?url="+url.QueryEscape(imageURL), false)
	if err != nil {
		return nil, "", err
	}
	return res.Raw, res.ContentType, nil
}
