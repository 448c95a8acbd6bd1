// Package schema contains the core contracts shared across firegate packages.
// Concrete implementations live in their respective packages; this package is
// the single canonical source of truth for every shared type.
package schema

import (
	"context"
	"encoding/json"
	"sort"
)

// Tool is the interface every agent-callable tool must satisfy.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's parameters.
	Parameters() json.RawMessage
	Execute(ctx context.Context, params map[string]any) (string, error)
}

// ToolList holds a set of named tools ready to hand to an agent engine.
type ToolList struct {
	tools map[string]Tool
}

func NewToolList(tools []Tool) ToolList {
	list := ToolList{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		list.tools[t.Name()] = t
	}

	return list
}

// Get returns the tool with the given name, or nil.
func (r *ToolList) Get(name string) Tool { return r.tools[name] }

func (r *ToolList) Add(t Tool) Tool {
	if r.tools == nil {
		r.tools = make(map[string]Tool)
	}
	r.tools[t.Name()] = t
	return t
}

func (r *ToolList) Len() int { return len(r.tools) }

// Names returns all tool names in alphabetical order.
func (r *ToolList) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all tool definitions in OpenAI function-calling format.
func (r *ToolList) Definitions() []map[string]any {
	list := make([]map[string]any, 0, len(r.tools))

	for _, name := range r.Names() {
		t := r.tools[name]
		var params any
		if err := json.Unmarshal(t.Parameters(), &params); err != nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		list = append(list, map[string]any{
			"type": "function",
			"function": map[string]any{
				"name":        t.Name(),
				"description": t.Description(),
				"parameters":  params,
			},
		})
	}

	return list
}
