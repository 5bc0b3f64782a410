package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	domainerrors "github.com/yancarpet/storefront/internal/errors"
)

// decodeBody unmarshals a JSON request body into dest.
func decodeBody(r *http.Request, dest any) error {
	if err := json.UnmarshalRead(r.Body, dest); err != nil {
		return domainerrors.Validation("invalid JSON body").WithCause(err)
	}
	return nil
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryFloat reads a float query parameter with the same fallback contract.
func queryFloat(r *http.Request, name string, def float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}
