// Package host defines the capability surface a runtime must provide to
// tools: the parameter store, the secret store, the HTTP helper, and the
// I/O side channel. Tools depend only on the Host interface and never see
// the concrete runtime behind it.
package host

import (
	"context"
	"encoding/json"

	"github.com/firegate-ai/firegate/internal/schema"
)

// RequestOptions describes one outbound JSON HTTP call. Body is encoded as
// the JSON request body; the response body is decoded as JSON and returned raw.
type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    map[string]any
}

// Host is the narrow view of the runtime that tools depend on.
type Host interface {
	// GetParameter resolves a configured parameter, returning fallback when unset.
	GetParameter(name, fallback string) string

	// GetCredentials resolves one credential record from the secret store.
	GetCredentials(key string) (schema.Credentials, error)

	// HTTPRequest performs one JSON HTTP call and returns the response body.
	// A transport failure, a non-2xx status, or a malformed response body is
	// an error; there is no retry and no response-schema validation.
	HTTPRequest(ctx context.Context, opts RequestOptions) (json.RawMessage, error)

	// RecordIO reports a tool I/O event. For input events it returns a fresh
	// correlation handle; outcome events carry the handle of their input
	// event and the return value is the same handle echoed back.
	RecordIO(ev schema.IOEvent) string
}
