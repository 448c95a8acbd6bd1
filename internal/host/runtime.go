package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/firegate-ai/firegate/internal/config"
	"github.com/firegate-ai/firegate/internal/recorder"
	"github.com/firegate-ai/firegate/internal/schema"
)

// LocalHost adapts the local config file and the in-process recorder to the
// Host interface, so tools can run outside a third-party agent host.
//
// The HTTP client carries no timeout of its own; cancellation is the
// caller's job through the request context.
type LocalHost struct {
	params map[string]string
	creds  map[string]schema.Credentials
	log    *recorder.Log
	client *http.Client
}

func NewLocalHost(cfg *config.Config, log *recorder.Log) *LocalHost {
	creds := make(map[string]schema.Credentials, len(cfg.Credentials))
	for key, c := range cfg.Credentials {
		creds[key] = schema.Credentials{BaseURL: c.BaseURL, APIKey: c.APIKey}
	}
	return &LocalHost{
		params: map[string]string{},
		creds:  creds,
		log:    log,
		client: &http.Client{},
	}
}

// SetParameter seeds the parameter store. Used when constructing tools from
// host-held parameters rather than explicit config.
func (h *LocalHost) SetParameter(name, value string) { h.params[name] = value }

func (h *LocalHost) GetParameter(name, fallback string) string {
	if v, ok := h.params[name]; ok && v != "" {
		return v
	}
	return fallback
}

func (h *LocalHost) GetCredentials(key string) (schema.Credentials, error) {
	c, ok := h.creds[key]
	if !ok {
		return schema.Credentials{}, fmt.Errorf("no credentials configured for %q — edit %s", key, config.ConfigPath())
	}
	return c, nil
}

func (h *LocalHost) HTTPRequest(ctx context.Context, opts RequestOptions) (json.RawMessage, error) {
	data, err := json.Marshal(opts.Body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var payload json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

func (h *LocalHost) RecordIO(ev schema.IOEvent) string {
	return h.log.Record(ev)
}

var _ Host = (*LocalHost)(nil)

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
