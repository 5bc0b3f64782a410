package api

import (
	"net/http"

	"github.com/yancarpet/storefront/internal/http/response"
)

// handleGetMedia serves a proxied catalog image. The placeholder hash rides
// on a header so image tags can use the body directly.
func (s *Server) handleGetMedia(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		response.BadRequest(w, "url parameter is required", s.logger)
		return
	}

	asset, err := s.services.Media.Get(r.Context(), imageURL)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	if asset.BlurHash != "" {
		w.Header().Set("X-Blurhash", asset.BlurHash)
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(asset.Data)
}
