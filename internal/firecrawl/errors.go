package firecrawl

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ToolError is the structured failure reported when a tool invocation fails.
// It names the operation, keeps the underlying cause, and carries a JSON
// snapshot of the offending input for diagnostics.
type ToolError struct {
	Op    Operation
	Input map[string]any
	Err   error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s error: %v (input: %s)", ToolName(e.Op), e.Err, e.inputJSON())
}

func (e *ToolError) Unwrap() error { return e.Err }

func (e *ToolError) inputJSON() string {
	data, err := json.Marshal(e.Input)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// wrapToolError wraps err for op unless it is already a *ToolError, which is
// propagated unchanged rather than double-wrapped.
func wrapToolError(op Operation, input map[string]any, err error) error {
	var te *ToolError
	if errors.As(err, &te) {
		return err
	}
	return &ToolError{Op: op, Input: input, Err: err}
}
