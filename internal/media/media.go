// Package media serves catalog imagery through the backend's media proxy
// with a local cache. Fetched assets are stored in the session database so
// product images survive restarts and repeat views cost no network.
package media

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/ratelimit"
	"github.com/yancarpet/storefront/internal/store"
)

// Fetcher retrieves raw image bytes from the backend media proxy.
type Fetcher interface {
	FetchMedia(ctx context.Context, imageURL string) ([]byte, string, error)
}

// Asset is a cached image with its placeholder hash.
type Asset struct {
	Data        []byte `json:"data"`
	ContentType string `json:"contentType"`
	BlurHash    string `json:"blurHash,omitempty"`
	FetchedAt   int64  `json:"fetchedAt"`
}

// Service fetches and caches proxied catalog images.
type Service struct {
	fetcher Fetcher
	store   *store.Store
	limiter *ratelimit.KeyedRateLimiter
	logger  *logger.Logger
}

// NewService creates the media service. The limiter is keyed by upstream
// image host so one slow CDN cannot starve the others.
func NewService(fetcher Fetcher, st *store.Store, limiter *ratelimit.KeyedRateLimiter, log *logger.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		store:   st,
		limiter: limiter,
		logger:  log,
	}
}

// Get returns the image for a catalog URL, from cache when possible.
// A cache miss waits for the host's rate limiter before going upstream.
func (s *Service) Get(ctx context.Context, imageURL string) (*Asset, error) {
	key := store.MediaKey(imageURL)

	var cached Asset
	if s.store.Load(key, &cached) {
		return &cached, nil
	}

	if err := s.limiter.Wait(ctx, hostOf(imageURL)); err != nil {
		return nil, err
	}

	data, contentType, err := s.fetcher.FetchMedia(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	asset := Asset{
		Data:        data,
		ContentType: contentType,
		FetchedAt:   time.Now().UnixMilli(),
	}

	if strings.HasPrefix(contentType, "image/") {
		hash, hashErr := computeBlurHash(data)
		if hashErr != nil {
			s.logger.Debug("blurhash computation failed", "url", imageURL, "error", hashErr)
		} else {
			asset.BlurHash = hash
		}
	}

	s.store.Save(key, asset)

	return &asset, nil
}

// hostOf extracts the rate-limit key for an image URL. Unparseable URLs
// share a single bucket.
func hostOf(imageURL string) string {
	u, err := url.Parse(imageURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Host
}
