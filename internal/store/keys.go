package store

import (
	"crypto/sha256"
	"encoding/hex"
)

// Namespaced keys for the session mirror. Each holds one JSON value.
const (
	KeyCart      = "session:cart"      // domain.Cart
	KeyFavorites = "session:favorites" // domain.Favorites
	KeyToken     = "session:token"     // string (bearer token)
	KeyEmail     = "session:email"     // string
	KeyClientID  = "session:client"    // string, stable per install
	KeyCatalog   = "cache:catalog"     // []domain.Product, last fetched list
	KeyOrders    = "cache:orders"      // domain.OrderPage, last fetched history page
)

const mediaPrefix = "media:"

// MediaKey derives the cache key for a proxied image URL.
// URLs can be long and contain arbitrary characters, so they are hashed.
func MediaKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return mediaPrefix + hex.EncodeToString(sum[:16])
}
