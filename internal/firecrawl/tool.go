package firecrawl

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/firegate-ai/firegate/internal/host"
	"github.com/firegate-ai/firegate/internal/schema"
)

// Config selects which operation a tool instance exposes. An empty Type
// defaults to scrape. A non-empty Description replaces the built-in template.
type Config struct {
	Type        string
	Description string
}

// tool is one agent-callable Firecrawl operation bound to a host.
type tool struct {
	op          Operation
	description string
	client      *Client
	host        host.Host
}

var _ schema.Tool = (*tool)(nil)

// New builds the callable tool for cfg. A type outside the supported set is a
// configuration error reported immediately; nothing touches the network here.
func New(h host.Host, cfg Config) (schema.Tool, error) {
	op := Operation(cfg.Type)
	if cfg.Type == "" {
		op = OpScrape
	}
	desc, ok := descriptors[op]
	if !ok {
		return nil, fmt.Errorf("unsupported tool type %q (supported: scrape, map, search, crawl)", cfg.Type)
	}

	description := desc.description
	if custom := strings.TrimSpace(cfg.Description); custom != "" {
		description = custom
	}

	return &tool{
		op:          op,
		description: description,
		client:      NewClient(h),
		host:        h,
	}, nil
}

// FromHost builds the tool from the host's own parameter store, reading the
// "toolType" and "description" parameters with their documented defaults.
func FromHost(h host.Host) (schema.Tool, error) {
	return New(h, Config{
		Type:        h.GetParameter("toolType", string(OpScrape)),
		Description: h.GetParameter("description", ""),
	})
}

func (t *tool) Name() string                { return ToolName(t.op) }
func (t *tool) Description() string         { return t.description }
func (t *tool) Parameters() json.RawMessage { return descriptors[t.op].schema }

// Execute records the input, performs the remote call, records the outcome
// under the same correlation handle, and returns the response as indented
// JSON. On failure the structured error is recorded before it is returned.
func (t *tool) Execute(ctx context.Context, params map[string]any) (string, error) {
	handle := t.host.RecordIO(schema.IOEvent{
		Kind:    schema.EventInput,
		Tool:    t.Name(),
		Payload: params,
	})

	raw, err := t.client.Request(ctx, t.op, params)
	if err != nil {
		return "", t.fail(handle, params, err)
	}

	var response any
	if err := json.Unmarshal(raw, &response); err != nil {
		return "", t.fail(handle, params, fmt.Errorf("decode response: %w", err))
	}

	t.host.RecordIO(schema.IOEvent{
		Kind:    schema.EventOutput,
		Tool:    t.Name(),
		Handle:  handle,
		Payload: map[string]any{"response": response},
	})

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", t.fail(handle, params, fmt.Errorf("render response: %w", err))
	}
	return string(out), nil
}

func (t *tool) fail(handle string, params map[string]any, err error) error {
	werr := wrapToolError(t.op, params, err)
	t.host.RecordIO(schema.IOEvent{
		Kind:   schema.EventError,
		Tool:   t.Name(),
		Handle: handle,
		Error:  werr.Error(),
	})
	return werr
}
