// Package recorder implements the tool I/O side channel: an in-memory run log
// with correlation handles, fanned out to notification sinks.
package recorder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/firegate-ai/firegate/internal/schema"
)

// Log stores tool I/O events in order of arrival and notifies sinks.
// The zero value is not usable; call NewLog.
type Log struct {
	mu     sync.Mutex
	events []schema.IOEvent
	sinks  []schema.Sink
}

func NewLog() *Log {
	return &Log{}
}

// AddSink registers a sink for subsequent events.
func (l *Log) AddSink(s schema.Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

// Record appends ev to the log and notifies all sinks. An input event without
// a handle is assigned a fresh one; the handle is returned so the outcome
// event can be recorded under it. The append happens before any sink runs, so
// the log always reflects an event by the time control returns to the caller.
func (l *Log) Record(ev schema.IOEvent) string {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	if ev.Kind == schema.EventInput && ev.Handle == "" {
		ev.Handle = uuid.NewString()
	}

	l.mu.Lock()
	l.events = append(l.events, ev)
	sinks := make([]schema.Sink, len(l.sinks))
	copy(sinks, l.sinks)
	l.mu.Unlock()

	for _, s := range sinks {
		if err := s.Notify(context.Background(), ev); err != nil {
			slog.Warn("recorder: sink notify failed", "sink", s.Name(), "err", err)
		}
	}

	return ev.Handle
}

// Events returns a copy of all recorded events in arrival order.
func (l *Log) Events() []schema.IOEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]schema.IOEvent, len(l.events))
	copy(out, l.events)
	return out
}

// ByHandle returns the events correlated under handle, in arrival order.
func (l *Log) ByHandle(handle string) []schema.IOEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []schema.IOEvent
	for _, ev := range l.events {
		if ev.Handle == handle {
			out = append(out, ev)
		}
	}
	return out
}
