package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averla/storeview/internal/domain/product"
)

const fjallravenBody = `{
	"id": 1,
	"title": "Fjallraven Backpack",
	"price": 109.95,
	"description": "Your perfect pack for everyday use and walks in the forest.",
	"category": "men's clothing",
	"image": "https://fakestoreapi.com/img/81fPKd-2AYL.jpg",
	"rating": {"rate": 3.9, "count": 120}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, WithHTTPClient(srv.Client()))
}

func TestFetch_Success(t *testing.T) {
	var gotPath string
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fjallravenBody))
	})

	p, err := client.Fetch(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "/products/1", gotPath)
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Fjallraven Backpack", p.Title)
	assert.Equal(t, "109.95", p.Price.StringFixed(2))
	assert.Equal(t, "Your perfect pack for everyday use and walks in the forest.", p.Description)
	assert.Equal(t, "men's clothing", p.Category)
	assert.Equal(t, "https://fakestoreapi.com/img/81fPKd-2AYL.jpg", p.Image)
	assert.Equal(t, "3.9", p.Rating.Rate.String())
	assert.Equal(t, 120, p.Rating.Count)
}

func TestFetch_UnknownFieldsIgnored(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 2, "title": "Widget", "price": 5, "unexpected": {"nested": [1, 2]}}`))
	})

	p, err := client.Fetch(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Widget", p.Title)
	assert.Equal(t, "5.00", p.Price.StringFixed(2))
}

func TestFetch_NotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	_, err := client.Fetch(context.Background(), 99)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestFetch_ServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Fetch(context.Background(), 1)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Contains(t, err.Error(), "500")
	assert.False(t, errors.Is(err, product.ErrNotFound))
}

func TestFetch_MalformedBody(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": "not a number"`))
	})

	_, err := client.Fetch(context.Background(), 1)

	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Contains(t, err.Error(), "decode product")
}

func TestFetch_NetworkFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := NewClient(srv.URL)
	srv.Close()

	_, err := client.Fetch(context.Background(), 1)

	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
}

func TestFetch_ContextCancelled(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Fetch(ctx, 1)

	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
}

func TestTransportError_FallbackMessage(t *testing.T) {
	assert.Equal(t, "failed to load product", (&TransportError{}).Error())
	assert.Equal(t, "connection reset", (&TransportError{Err: errors.New("connection reset")}).Error())
}
