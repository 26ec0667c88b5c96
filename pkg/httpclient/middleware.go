// Package httpclient provides composable http.RoundTripper middleware for
// outbound requests: request-ID injection, request logging, and OpenTelemetry
// instrumentation.
package httpclient

import "net/http"

// Middleware wraps an http.RoundTripper with additional behavior.
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to the http.RoundTripper interface.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Wrap applies middlewares to base so that the first middleware in the list
// is the outermost, i.e. sees the request first.
func Wrap(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}
	return rt
}
