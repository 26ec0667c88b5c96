package httpclient

import (
	"net/http"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// LogRequests returns a middleware that logs every outbound request with its
// method, URL, status, and duration. Successful requests log at debug level,
// transport failures at warn. When lg is nil the logger is taken from the
// request context (zctx).
func LogRequests(lg *zap.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			logger := lg
			if logger == nil {
				logger = zctx.From(req.Context())
			}

			start := time.Now()
			resp, err := next.RoundTrip(req)
			elapsed := time.Since(start)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("url", req.URL.Redacted()),
				zap.Duration("duration", elapsed),
			}
			if err != nil {
				logger.Warn("Outbound request failed", append(fields, zap.Error(err))...)
				return nil, err
			}

			logger.Debug("Outbound request", append(fields,
				zap.Int("status", resp.StatusCode),
				zap.String("request_id", req.Header.Get("X-Request-ID")),
			)...)
			return resp, nil
		})
	}
}
