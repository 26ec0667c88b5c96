package httpclient

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID returns a middleware that stamps every outbound request with a
// unique X-Request-ID header. A header already set by the caller is kept, so
// retried or replayed requests stay correlatable.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("X-Request-ID") == "" {
				// Clone before mutating: RoundTrippers must not modify the
				// caller's request.
				req = req.Clone(req.Context())
				req.Header.Set("X-Request-ID", uuid.New().String())
			}
			return next.RoundTrip(req)
		})
	}
}
