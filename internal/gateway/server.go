// Package gateway serves the tool I/O event stream to observers.
//
// Connected WebSocket clients receive every recorded event as a JSON frame;
// GET /events returns the full run log for observers that arrive late.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/firegate-ai/firegate/internal/recorder"
	"github.com/firegate-ai/firegate/internal/schema"
)

const writeTimeout = 10 * time.Second

// Server is the observer endpoint. It registers with the recorder log as a
// sink and broadcasts each event to all connected clients.
type Server struct {
	log      *recorder.Log
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewServer(log *recorder.Log) *Server {
	return &Server{
		log:   log,
		conns: map[*websocket.Conn]struct{}{},
	}
}

func (s *Server) Name() string { return "gateway" }

// Notify implements schema.Sink by broadcasting ev to every connected
// observer. Dead connections are dropped; delivery is best-effort.
func (s *Server) Notify(_ context.Context, ev schema.IOEvent) error {
	frame, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
	return nil
}

// Run serves the observer endpoints on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", s.handleStream)
	mux.HandleFunc("/events", s.handleEvents)

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("gateway: listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("gateway: upgrade failed", "err", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	n := len(s.conns)
	s.mu.Unlock()
	slog.Info("gateway: observer connected", "observers", n)

	// Read loop exists only to detect the close; observers never send frames.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
}

func (s *Server) handleEvents(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.log.Events()); err != nil {
		slog.Warn("gateway: encode events failed", "err", err)
	}
}

var _ schema.Sink = (*Server)(nil)
