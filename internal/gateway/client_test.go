package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yancarpet/storefront/internal/domain"
	domainerrors "github.com/yancarpet/storefront/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler, token string) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		BaseURL: srv.URL,
		Tokens:  StaticToken(token),
	})
}

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestClient_AuthRequiredFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int64
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}), "")

	_, err := c.Do(context.Background(), http.MethodGet, "/favorites", nil, true)

	assert.True(t, domainerrors.IsCode(err, domainerrors.CodeAuthRequired))
	assert.Zero(t, hits.Load())
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}), "tok-123")

	_, err := c.Do(context.Background(), http.MethodGet, "/account/me", nil, true)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NonSuccessBecomesUpstreamError(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusServiceUnavailable, `backend down`), "")

	_, err := c.Do(context.Background(), http.MethodGet, "/items", nil, false)

	var upstream *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.Status)
	assert.Equal(t, "backend down", upstream.Body)
}

func TestClient_ListItems(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK,
		`{"items":[{"sku":"RUG-1","name":"Heritage Wool","price":249.99}]}`), "")

	items, err := c.ListItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "RUG-1", items[0].SKU)
	assert.Equal(t, 249.99, items[0].UnitPrice)
}

func TestClient_GetItem(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/RUG-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sku":"RUG-1","roomType":"bedroom"}`))
	}), "")

	item, err := c.GetItem(context.Background(), "RUG-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StringList{"bedroom"}, item.RoomTypes)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-abc"}`))
	}), "")

	token, err := c.Login(context.Background(), Credentials{Email: "a@b.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestClient_ListFavoritesStringShape(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `["RUG-1","RUG-2"]`), "tok")

	skus, err := c.ListFavorites(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"RUG-1", "RUG-2"}, skus)
}

func TestClient_ListFavoritesObjectShape(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK,
		`[{"sku":"RUG-1","addedAt":1700000000000},{"sku":""}]`), "tok")

	skus, err := c.ListFavorites(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"RUG-1"}, skus)
}

func TestClient_ToggleFavorite(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `{"favorited":true}`), "tok")

	favorited, err := c.ToggleFavorite(context.Background(), "RUG-1")

	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestClient_CreateOrderRequiresOrderID(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusCreated, `{"status":"PENDING"}`), "tok")

	_, err := c.CreateOrder(context.Background(), CreateOrderRequest{CustomerEmail: "a@b.com"})

	assert.ErrorContains(t, err, "orderId")
}

func TestClient_OrderHistoryBareArray(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK,
		`[{"orderId":"ord-1"},{"orderId":"ord-2"}]`), "tok")

	page, err := c.OrderHistory(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Len(t, page.Orders, 2)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Total)
}

func TestClient_OrderHistoryEnvelope(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK,
		`{"orders":[{"orderId":"ord-1"}],"page":1,"size":20,"total":57}`), "tok")

	page, err := c.OrderHistory(context.Background(), 1, 20)

	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, 57, page.Total)
}
