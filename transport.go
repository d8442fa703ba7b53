package driveaccess

import (
	"context"
	"encoding/json"
)

// Transport issues requests against the access service and returns parsed
// JSON bodies. The default implementation is Client; tests and embedders may
// substitute their own. Implementations reject with an error on non-2xx
// responses or network failure. Cancellation and timeouts are the
// transport's responsibility, driven by the supplied context.
type Transport interface {
	// Get issues a GET request with no body.
	Get(ctx context.Context, path string) (json.RawMessage, error)

	// Post issues a POST request. A nil body sends no request body.
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)

	// Delete issues a DELETE request. A nil body sends no request body.
	Delete(ctx context.Context, path string, body any) (json.RawMessage, error)
}
