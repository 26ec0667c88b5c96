package catalog

import (
	"fmt"
	"net/http"

	"github.com/averla/storeview/internal/domain/product"
)

// fallbackMessage is surfaced when a transport fault carries no message of
// its own.
const fallbackMessage = "failed to load product"

// RequestError indicates the catalog endpoint answered with a non-2xx status.
// The numeric status is part of the message so it reaches the error view
// verbatim.
type RequestError struct {
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Is reports a 404 as product.ErrNotFound so callers can match the sentinel
// without knowing about HTTP.
func (e *RequestError) Is(target error) bool {
	return target == product.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// TransportError indicates the request never produced a usable response:
// the network was unreachable, the connection broke, or the body could not
// be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return fallbackMessage
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
