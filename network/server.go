package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lixenwraith/raycaster/engine"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 64 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the spectator stream at /ws, frame stats at /metrics and /healthz
type Server struct {
	cfg    Config
	hub    *Hub
	stats  *engine.Stats
	logger *zap.SugaredLogger

	mux      *http.ServeMux
	http     *http.Server
	listener net.Listener
	ctx      context.Context
	cancel   context.CancelFunc
	hubOnce  sync.Once
	done     chan struct{}
}

// NewServer creates a server; stats may be nil.
// Shutdown releases the hub whether or not Start was called.
func NewServer(cfg Config, stats *engine.Stats, logger *zap.SugaredLogger) *Server {
	if stats == nil {
		stats = &engine.Stats{}
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &Server{
		cfg:    cfg,
		stats:  stats,
		logger: logger,
		done:   make(chan struct{}),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.hub = NewHub(stats.IncDropped)

	s.mux = http.NewServeMux()
	s.mux.HandleFunc("/ws", s.serveWS)
	s.mux.HandleFunc("/metrics", s.serveMetrics)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	s.http = &http.Server{Handler: s.mux}
	return s
}

func (s *Server) Hub() *Hub { return s.hub }

// Handler routes the server endpoints and starts the hub, for mounting on another server
func (s *Server) Handler() http.Handler {
	s.startHub()
	return s.mux
}

func (s *Server) startHub() {
	s.hubOnce.Do(func() { go s.hub.Run(s.ctx) })
}

// Start listens on the configured address and serves in the background
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("stream listen %s: %w", s.cfg.Addr, err)
	}
	s.listener = ln
	context.AfterFunc(ctx, s.cancel)

	s.startHub()
	go func() {
		defer close(s.done)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorw("stream server failed", "error", err)
		}
	}()

	s.logger.Infow("stream server listening", "addr", ln.Addr().String())
	return nil
}

// Addr is the bound listen address, empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops accepting, closes spectator queues and waits for the serve goroutine
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	if s.listener == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	<-s.done
	s.logger.Infow("stream server stopped", "error", err)
	return err
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{
		hub:          s.hub,
		conn:         conn,
		send:         make(chan []byte, s.cfg.ClientBuffer),
		writeTimeout: s.cfg.WriteTimeout,
	}
	select {
	case s.hub.register <- c:
	case <-s.ctx.Done():
		conn.Close()
		return
	}
	s.logger.Infow("spectator connected", "remote", r.RemoteAddr)

	go c.writePump()
	go c.readPump(s.ctx)
}

func (s *Server) serveMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot := s.stats.Snapshot()
	snapshot["spectators"] = s.hub.Clients()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		s.logger.Warnw("metrics encode failed", "error", err)
	}
}
