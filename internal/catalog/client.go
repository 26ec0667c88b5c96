// Package catalog implements the HTTP client for the remote product catalog.
//
// The catalog is a plain JSON-over-HTTP service: one GET per product, no
// authentication, no request parameters. Failures are split into two kinds:
// RequestError for non-2xx answers and TransportError for everything that
// prevented a response from being decoded.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-faster/errors"

	"github.com/averla/storeview/internal/domain/product"
)

// maxBodySize caps how much of a catalog response is read into memory.
// Product records are a few hundred bytes; 1 MiB leaves generous headroom.
const maxBodySize = 1 << 20

// Client fetches product records from a catalog endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client. The default client is used
// otherwise; no extra deadline is imposed beyond what that client carries.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a Client for the catalog at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile-time check ensuring Client satisfies the domain Fetcher interface.
var _ product.Fetcher = (*Client)(nil)

// Fetch retrieves a single product record. Non-2xx statuses become a
// *RequestError; network faults and malformed bodies become a
// *TransportError.
func (c *Client) Fetch(ctx context.Context, id int) (*product.Product, error) {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)

	// No parameters, headers, or authentication: the catalog is a plain
	// public GET. The transport stack may still stamp correlation headers.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &RequestError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "read body")}
	}

	p, err := decodeProduct(body)
	if err != nil {
		return nil, &TransportError{Err: errors.Wrap(err, "decode product")}
	}
	return p, nil
}
