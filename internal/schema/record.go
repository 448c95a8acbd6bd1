package schema

import (
	"context"
	"fmt"
	"time"
)

// EventKind classifies an entry in the tool I/O side channel.
type EventKind string

const (
	EventInput  EventKind = "input"
	EventOutput EventKind = "output"
	EventError  EventKind = "error"
)

// IOEvent is one entry in the tool I/O side channel. Every invocation produces
// two events: an input event recorded before dispatch, and an output or error
// event recorded after, correlated by Handle.
type IOEvent struct {
	Kind    EventKind      `json:"kind"`
	Tool    string         `json:"tool"`
	Handle  string         `json:"handle,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
	Error   string         `json:"error,omitempty"`
	At      time.Time      `json:"at"`
}

// Summary renders a one-line human-readable account of the event, used by
// notification sinks.
func (e IOEvent) Summary() string {
	switch e.Kind {
	case EventInput:
		return fmt.Sprintf("%s dispatched [%s]", e.Tool, e.Handle)
	case EventError:
		return fmt.Sprintf("%s failed [%s]: %s", e.Tool, e.Handle, e.Error)
	}
	return fmt.Sprintf("%s completed [%s]", e.Tool, e.Handle)
}

// Sink receives recorded I/O events. Implementations must be safe for
// concurrent use and should return quickly; slow delivery blocks the
// recording invocation.
type Sink interface {
	Name() string
	Notify(ctx context.Context, ev IOEvent) error
}
