package host_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/firegate-ai/firegate/internal/config"
	"github.com/firegate-ai/firegate/internal/firecrawl"
	"github.com/firegate-ai/firegate/internal/host"
	"github.com/firegate-ai/firegate/internal/recorder"
	"github.com/firegate-ai/firegate/internal/schema"
)

func newTestHost(cfg *config.Config) (*host.LocalHost, *recorder.Log) {
	if cfg == nil {
		c := config.DefaultConfig()
		cfg = &c
	}
	log := recorder.NewLog()
	return host.NewLocalHost(cfg, log), log
}

func TestHTTPRequest_SendsBodyAndHeaders(t *testing.T) {
	var gotMethod, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	h, _ := newTestHost(nil)
	raw, err := h.HTTPRequest(context.Background(), host.RequestOptions{
		Method:  http.MethodPost,
		URL:     srv.URL,
		Headers: map[string]string{"Authorization": "Bearer k"},
		Body:    map[string]any{"url": "https://example.com"},
	})
	if err != nil {
		t.Fatalf("HTTPRequest: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method: %q", gotMethod)
	}
	if gotAuth != "Bearer k" {
		t.Errorf("auth header: %q", gotAuth)
	}
	if gotBody["url"] != "https://example.com" {
		t.Errorf("body: %v", gotBody)
	}
	if string(raw) != `{"ok": true}` {
		t.Errorf("response: %s", raw)
	}
}

func TestHTTPRequest_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "nope"}`))
	}))
	defer srv.Close()

	h, _ := newTestHost(nil)
	_, err := h.HTTPRequest(context.Background(), host.RequestOptions{Method: "POST", URL: srv.URL})
	if err == nil {
		t.Fatal("expected error for 500")
	}
	if !strings.Contains(err.Error(), "HTTP 500") {
		t.Errorf("error should carry the status: %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should carry the body: %v", err)
	}
}

func TestHTTPRequest_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	h, _ := newTestHost(nil)
	_, err := h.HTTPRequest(context.Background(), host.RequestOptions{Method: "POST", URL: srv.URL})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetCredentials(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Credentials["firecrawlApi"] = config.CredentialConfig{APIKey: "k", BaseURL: "https://fc.test"}

	h, _ := newTestHost(&cfg)
	creds, err := h.GetCredentials("firecrawlApi")
	if err != nil {
		t.Fatalf("GetCredentials: %v", err)
	}
	if creds.APIKey != "k" || creds.BaseURL != "https://fc.test" {
		t.Errorf("unexpected credentials: %+v", creds)
	}

	if _, err := h.GetCredentials("missing"); err == nil {
		t.Error("expected error for unknown credential key")
	}
}

func TestGetParameter(t *testing.T) {
	h, _ := newTestHost(nil)
	if got := h.GetParameter("toolType", "scrape"); got != "scrape" {
		t.Errorf("fallback: %q", got)
	}
	h.SetParameter("toolType", "map")
	if got := h.GetParameter("toolType", "scrape"); got != "map" {
		t.Errorf("set value: %q", got)
	}
}

func TestRecordIO_CorrelatesThroughLog(t *testing.T) {
	h, log := newTestHost(nil)

	h1 := h.RecordIO(schema.IOEvent{Kind: schema.EventInput, Tool: "firecrawl_map"})
	h2 := h.RecordIO(schema.IOEvent{Kind: schema.EventInput, Tool: "firecrawl_map"})
	if h1 == "" || h1 == h2 {
		t.Fatalf("handles must be distinct and non-empty: %q, %q", h1, h2)
	}

	h.RecordIO(schema.IOEvent{Kind: schema.EventOutput, Tool: "firecrawl_map", Handle: h1})

	run := log.ByHandle(h1)
	if len(run) != 2 {
		t.Fatalf("expected 2 correlated events, got %d", len(run))
	}
	if run[0].Kind != schema.EventInput || run[1].Kind != schema.EventOutput {
		t.Errorf("unexpected kinds: %s, %s", run[0].Kind, run[1].Kind)
	}
}

// End-to-end: config file credentials, local host, real HTTP server, and a
// tool invocation flowing through the recorder.
func TestEndToEnd_MapInvocation(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"links": ["https://example.com/a", "https://example.com/b"]}`))
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	cfg.Credentials["firecrawlApi"] = config.CredentialConfig{APIKey: "e2e-key", BaseURL: srv.URL}

	h, log := newTestHost(&cfg)
	tool, err := firecrawl.New(h, firecrawl.Config{Type: "map"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := tool.Execute(context.Background(), map[string]any{"url": "https://example.com"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if gotPath != "/map" {
		t.Errorf("request path: %q", gotPath)
	}
	if gotAuth != "Bearer e2e-key" {
		t.Errorf("auth header: %q", gotAuth)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	links, ok := parsed["links"].([]any)
	if !ok || len(links) != 2 {
		t.Errorf("unexpected result: %v", parsed)
	}

	events := log.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 recorded events, got %d", len(events))
	}
	if events[0].Kind != schema.EventInput || events[1].Kind != schema.EventOutput {
		t.Errorf("unexpected event kinds: %s, %s", events[0].Kind, events[1].Kind)
	}
	if events[0].Handle != events[1].Handle {
		t.Error("events not correlated")
	}
}
