package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ error = (*UpstreamError)(nil)

func TestUpstreamError_ImplementsError(t *testing.T) {
	var err error = Upstream(http.StatusServiceUnavailable, "backend down")

	assert.Equal(t, "HTTP 503: backend down", err.Error())
}

func TestUpstreamError_CarriesStatusAndBody(t *testing.T) {
	err := Upstream(http.StatusBadGateway, "boom")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
	assert.Equal(t, "boom", upstream.Body)
}

func TestUpstreamError_UnwrapsToCodedError(t *testing.T) {
	var err error = Upstream(http.StatusServiceUnavailable, "down")

	assert.True(t, IsCode(err, CodeUpstream))

	var coded *Error
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, http.StatusBadGateway, coded.HTTPStatus())
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(Validation("bad"), CodeValidation))
	assert.False(t, IsCode(Validation("bad"), CodeNotFound))
	assert.False(t, IsCode(nil, CodeValidation))
}

func TestError_WrappingKeepsCode(t *testing.T) {
	inner := NotFound("no such item")
	wrapped := Wrap(inner, CodeInternal, "lookup failed")

	assert.True(t, IsCode(wrapped, CodeInternal))
	assert.ErrorIs(t, wrapped, ErrNotFound)
}
