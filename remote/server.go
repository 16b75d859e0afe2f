// Package remote serves a browser touch pad that drives a running session
// over WebSocket.
package remote

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"

	"github.com/lixenwraith/quadsnake/constants"
	"github.com/lixenwraith/quadsnake/engine"
	"github.com/lixenwraith/quadsnake/input"
)

//go:embed static/index.html
var indexHTML []byte

const (
	sendBuffer      = 16
	writeTimeout    = 5 * time.Second
	shutdownTimeout = 3 * time.Second
	maxFrameBytes   = 4096
)

// Controller is the slice of a game session the touch pad needs
type Controller interface {
	Snapshot() engine.Snapshot
	Steer(h engine.Heading) bool
	Tap(h engine.Heading)
	Restart() bool
	Subscribe(fn engine.Observer) (unsubscribe func())
}

// Server exposes a Controller over HTTP and WebSocket
type Server struct {
	ctl         Controller
	log         *log.Logger
	allowRemote bool
	upgrader    websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*websocket.Conn

	clients atomic.Int64
	dropped atomic.Uint64
}

// NewServer creates a server for ctl. A nil logger discards output.
func NewServer(ctl Controller, logger *log.Logger, allowRemote bool) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{
		ctl:         ctl,
		log:         logger,
		allowRemote: allowRemote,
		conns:       make(map[string]*websocket.Conn),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return s.allowRemote || isLoopbackRemote(r.RemoteAddr)
		},
	}
	return s
}

// Clients returns the number of connected touch pads
func (s *Server) Clients() int64 {
	return s.clients.Load()
}

// Dropped returns the number of state frames skipped for slow clients
func (s *Server) Dropped() uint64 {
	return s.dropped.Load()
}

// Handler returns the route tree
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.guard)

	r.Get("/", gzhttp.GzipHandler(http.HandlerFunc(s.handleIndex)))
	r.Get("/api/state", gzhttp.GzipHandler(http.HandlerFunc(s.handleState)))
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWS)
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down and
// closes open WebSocket connections
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("remote listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.log.Printf("remote: serving on %s", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("remote serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.closeAll()
	<-errCh
	if err != nil {
		return fmt.Errorf("remote shutdown: %w", err)
	}
	s.log.Printf("remote: stopped")
	return nil
}

func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.allowRemote && !isLoopbackRemote(r.RemoteAddr) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.ctl.Snapshot())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"clients": s.clients.Load(),
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("remote: upgrade: %v", err)
		return
	}
	conn.SetReadLimit(maxFrameBytes)

	id := uuid.NewString()
	s.track(id, conn)
	s.clients.Add(1)
	defer func() {
		s.untrack(id)
		s.clients.Add(-1)
		_ = conn.Close()
	}()
	s.log.Printf("remote: client %s connected from %s", id, r.RemoteAddr)

	// hello and the first state go in before any observer can enqueue
	out := make(chan []byte, sendBuffer)
	snap := s.ctl.Snapshot()
	hello, _ := json.Marshal(HelloMsg{
		Type:     TypeHello,
		Session:  id,
		Grid:     snap.Grid,
		CellSize: constants.CellSize,
	})
	out <- hello
	out <- encodeState(snap)

	unsubscribe := s.ctl.Subscribe(func(snap engine.Snapshot) {
		select {
		case out <- encodeState(snap):
		default:
			s.dropped.Add(1)
		}
	})
	defer unsubscribe()

	ctx, cancel := context.WithCancel(r.Context())
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer cancel()
		s.writeLoop(ctx, conn, out)
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Printf("remote: client %s read: %v", id, err)
			}
			break
		}
		msg, err := DecodeClientMsg(raw)
		if err != nil {
			s.log.Printf("remote: client %s: %v", id, err)
			continue
		}
		s.apply(msg)
	}

	cancel()
	<-writerDone
	s.log.Printf("remote: client %s disconnected", id)
}

func (s *Server) writeLoop(ctx context.Context, conn *websocket.Conn, out <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeTimeout))
			return
		case b := <-out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		}
	}
}

func (s *Server) apply(msg ClientMsg) {
	switch msg.Type {
	case TypeTouch:
		s.ctl.Tap(input.QuadrantHeading(msg.X, msg.Y, msg.Width, msg.Height))
	case TypeSteer:
		s.ctl.Steer(msg.Heading)
	case TypeRestart:
		s.ctl.Restart()
	}
}

func (s *Server) track(id string, conn *websocket.Conn) {
	s.mu.Lock()
	s.conns[id] = conn
	s.mu.Unlock()
}

func (s *Server) untrack(id string) {
	s.mu.Lock()
	delete(s.conns, id)
	s.mu.Unlock()
}

// closeAll unblocks handlers stuck in ReadMessage; Shutdown does not touch
// hijacked connections
func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, conn := range s.conns {
		_ = conn.Close()
	}
}

func encodeState(snap engine.Snapshot) []byte {
	b, _ := json.Marshal(StateMsg{Type: TypeState, Snapshot: snap})
	return b
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isLoopbackRemote(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
