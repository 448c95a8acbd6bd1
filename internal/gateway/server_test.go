package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/firegate-ai/firegate/internal/recorder"
	"github.com/firegate-ai/firegate/internal/schema"
)

func TestNotify_NoObservers(t *testing.T) {
	s := NewServer(recorder.NewLog())
	if err := s.Notify(context.Background(), schema.IOEvent{Kind: schema.EventInput}); err != nil {
		t.Errorf("Notify with no observers must succeed: %v", err)
	}
}

func TestEventsEndpoint(t *testing.T) {
	log := recorder.NewLog()
	log.Record(schema.IOEvent{Kind: schema.EventInput, Tool: "firecrawl_scrape"})

	s := NewServer(log)
	srv := httptest.NewServer(http.HandlerFunc(s.handleEvents))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var events []schema.IOEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 1 || events[0].Tool != "firecrawl_scrape" {
		t.Errorf("events: %+v", events)
	}
}

func TestStream_BroadcastsEvents(t *testing.T) {
	log := recorder.NewLog()
	s := NewServer(log)
	log.AddSink(s)

	srv := httptest.NewServer(http.HandlerFunc(s.handleStream))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Wait for the server to register the connection before recording.
	deadline := time.Now().Add(2 * time.Second)
	for {
		s.mu.Lock()
		n := len(s.conns)
		s.mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("observer never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	log.Record(schema.IOEvent{Kind: schema.EventError, Tool: "firecrawl_crawl", Error: "boom"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}

	var ev schema.IOEvent
	if err := json.Unmarshal(frame, &ev); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if ev.Kind != schema.EventError || ev.Tool != "firecrawl_crawl" || ev.Error != "boom" {
		t.Errorf("event: %+v", ev)
	}
}
