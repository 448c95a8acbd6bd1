package firecrawl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/firegate-ai/firegate/internal/host"
	"github.com/firegate-ai/firegate/internal/schema"
)

// integrationMarker identifies this integration to the Firecrawl API. It is
// merged into every outbound body last, so a colliding caller-supplied
// "integration" key is overwritten; the marker is always present.
const integrationMarker = "firegate-tool"

// Client builds and sends authenticated Firecrawl API requests through the
// host's HTTP helper. It is stateless; every call resolves credentials fresh.
type Client struct {
	host host.Host
}

func NewClient(h host.Host) *Client {
	return &Client{host: h}
}

// Request performs one POST to {baseUrl}/{op} with the caller body plus the
// integration marker, and returns the raw JSON response. Failure detection
// (transport errors, non-2xx, malformed bodies) is the host HTTP helper's
// job; this builder neither retries nor times out.
func (c *Client) Request(ctx context.Context, op Operation, body map[string]any) (json.RawMessage, error) {
	creds, err := c.host.GetCredentials(schema.CredentialKeyFirecrawl)
	if err != nil {
		return nil, fmt.Errorf("resolve credentials: %w", err)
	}
	if creds.APIKey == "" {
		return nil, fmt.Errorf("credential %q has an empty apiKey", schema.CredentialKeyFirecrawl)
	}
	base := creds.BaseURL
	if base == "" {
		base = schema.DefaultFirecrawlBaseURL
	}
	base = strings.TrimRight(base, "/")

	merged := make(map[string]any, len(body)+1)
	for k, v := range body {
		merged[k] = v
	}
	merged["integration"] = integrationMarker

	return c.host.HTTPRequest(ctx, host.RequestOptions{
		Method: http.MethodPost,
		URL:    base + "/" + string(op),
		Headers: map[string]string{
			"Authorization": "Bearer " + creds.APIKey,
			"Content-Type":  "application/json",
			"Accept":        "application/json",
		},
		Body: merged,
	})
}
