// Package web exposes the game over a websocket: browsers receive the draw
// commands of every frame and send arrow-key moves back.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/AkhtemKurtiev/feed-the-python/game/entity"
	"github.com/AkhtemKurtiev/feed-the-python/game/input"
	"github.com/AkhtemKurtiev/feed-the-python/game/manager"
	"github.com/AkhtemKurtiev/feed-the-python/game/types"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

//go:embed static
var staticFiles embed.FS

const eventBuffer = 256

// Server is a render sink and input source shared by every connected browser.
// Render methods are called from the game loop; connections come and go on
// HTTP goroutines.
type Server struct {
	grid     types.Grid
	cellSize int
	log      *zap.Logger
	upgrader websocket.Upgrader
	events   chan input.Event
	http     *http.Server

	mu      sync.Mutex
	clients map[*client]struct{}
	board   map[types.Point]entity.Color
	ops     []Op
	status  *manager.Snapshot
}

func NewServer(grid types.Grid, cellSize int, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		grid:     grid,
		cellSize: cellSize,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		events:  make(chan input.Event, eventBuffer),
		clients: make(map[*client]struct{}),
		board:   make(map[types.Point]entity.Color, grid.Area()),
	}
}

// Handler serves the browser client, the websocket endpoint and the stats.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	static, _ := fs.Sub(staticFiles, "static")
	mux.Handle("/", http.FileServer(http.FS(static)))
	return mux
}

// Start listens on addr in the background. Listen failures are sent on the
// returned channel.
func (s *Server) Start(addr string) <-chan error {
	errc := make(chan error, 1)
	s.http = &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		s.log.Info("web frontend listening", zap.String("addr", addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("listen on %s: %w", addr, err)
		}
		close(errc)
	}()
	return errc
}

// Shutdown stops the listener and drops every client.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := newClient(ws)

	s.mu.Lock()
	hello, err := json.Marshal(s.helloLocked())
	if err == nil {
		c.enqueue(hello)
	}
	s.clients[c] = struct{}{}
	count := len(s.clients)
	s.mu.Unlock()

	s.log.Info("client connected", zap.String("remote", r.RemoteAddr), zap.Int("clients", count))

	go c.writePump()
	go func() {
		c.readPump(s.deliver)
		s.drop(c)
		s.log.Info("client disconnected", zap.String("remote", r.RemoteAddr))
	}()
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	var snap manager.Snapshot
	if s.status != nil {
		snap = *s.status
	}
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snap)
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
}

// deliver queues an event for the game loop, dropping it when the loop lags.
func (s *Server) deliver(ev input.Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// Drain returns every browser event received since the previous call.
func (s *Server) Drain() []input.Event {
	var out []input.Event
	for {
		select {
		case ev := <-s.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (s *Server) DrawCell(p types.Point, c entity.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board[p] = c
	s.ops = append(s.ops, Op{Op: "draw", X: p.X, Y: p.Y, Color: hexColor(c)})
}

func (s *Server) EraseCell(p types.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.board, p)
	s.ops = append(s.ops, Op{Op: "erase", X: p.X, Y: p.Y})
}

func (s *Server) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.board)
	s.ops = append(s.ops[:0], Op{Op: "clear"})
}

func (s *Server) ShowStatus(snap manager.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = &snap
}

// Flush broadcasts the pending commands as one frame.
func (s *Server) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.Marshal(Frame{Type: "frame", Ops: s.ops, Status: s.status})
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	s.ops = s.ops[:0]
	for c := range s.clients {
		c.enqueue(b)
	}
	return nil
}

func (s *Server) helloLocked() Hello {
	cells := make([]Op, 0, len(s.board))
	for p, c := range s.board {
		cells = append(cells, Op{Op: "draw", X: p.X, Y: p.Y, Color: hexColor(c)})
	}
	return Hello{
		Type:         "hello",
		Width:        s.grid.Width,
		Height:       s.grid.Height,
		CellSize:     s.cellSize,
		Background:   hexColor(entity.BackgroundColor),
		Outline:      hexColor(entity.OutlineColor),
		OutlineWidth: entity.OutlineWidth,
		Cells:        cells,
	}
}
