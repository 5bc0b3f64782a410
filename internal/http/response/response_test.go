package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/yancarpet/storefront/internal/errors"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, map[string]string{"sku": "RUG-1"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"sku": "RUG-1"}, body["data"])
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestHandleError_DomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := domainerrors.ValidationWithDetails("card number is invalid", map[string]string{"field": "number"})

	HandleError(rec, err, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Equal(t, "card number is invalid", body["error"])
	assert.Equal(t, map[string]any{"field": "number"}, body["details"])
}

func TestHandleError_AuthRequired(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, domainerrors.AuthRequired("please sign in first"), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_REQUIRED", decodeEnvelope(t, rec)["code"])
}

func TestHandleError_Upstream(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, domainerrors.Upstream(http.StatusServiceUnavailable, "down"), nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "UPSTREAM", body["code"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(http.StatusServiceUnavailable), details["upstreamStatus"])
}

func TestHandleError_WrappedUpstream(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := domainerrors.Internal("payment submission failed").WithCause(
		domainerrors.Upstream(http.StatusBadGateway, "payments offline"))

	HandleError(rec, wrapped, nil)

	// The upstream cause wins over the outer wrapper
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "UPSTREAM", decodeEnvelope(t, rec)["code"])
}

func TestHandleError_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()

	HandleError(rec, errors.New("boom"), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeEnvelope(t, rec)["error"])
}
