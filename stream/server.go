// Package stream serves generated maps to browsers over a websocket,
// one draw instruction per message.
package stream

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"ebiten-quadgen/config"
	"ebiten-quadgen/generation"
)

//go:embed index.html
var indexHTML []byte

const writeTimeout = 3 * time.Second

// Server streams one generation pass per websocket connection
type Server struct {
	opts       config.Generation
	interval   time.Duration
	hub        *Hub
	logMessage func(string)
}

// NewServer creates a stream server; interval paces room messages (0 sends them back to back)
func NewServer(opts config.Generation, interval time.Duration, logFunc func(string)) *Server {
	if logFunc == nil {
		logFunc = func(string) {}
	}
	return &Server{
		opts:       opts,
		interval:   interval,
		hub:        NewHub(),
		logMessage: logFunc,
	}
}

// Hub returns the session registry
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleStream)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/config", s.handleConfig)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "healthy",
		"sessions": s.hub.Count(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.opts)
}

// sessionOptions applies the seed and rooms query parameters to the server options
func (s *Server) sessionOptions(r *http.Request) (config.Generation, error) {
	opts := s.opts
	q := r.URL.Query()

	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("bad seed %q: %w", v, err)
		}
		opts.Seed = seed
	}
	if v := q.Get("rooms"); v != "" {
		rooms, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("bad rooms %q: %w", v, err)
		}
		opts.TargetRoomCount = rooms
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	opts, err := s.sessionOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logMessage("Error: websocket accept: " + err.Error())
		return
	}
	defer conn.CloseNow()

	count := s.hub.Add(conn)
	defer s.hub.Remove(conn)
	s.logMessage(fmt.Sprintf("Session opened from %s (%d live)", r.RemoteAddr, count))

	// Incoming messages are ignored; ctx ends when the peer goes away
	ctx := conn.CloseRead(r.Context())

	if err := s.Stream(ctx, conn, opts); err != nil {
		s.logMessage("Error: stream: " + err.Error())
		_ = conn.Close(websocket.StatusInternalError, "generation failed")
		return
	}
	_ = conn.Close(websocket.StatusNormalClosure, "map complete")
}

// Stream runs one generation pass and writes the background, every room and
// the end marker to conn as JSON draw instructions.
func (s *Server) Stream(ctx context.Context, conn *websocket.Conn, opts config.Generation) error {
	seed := opts.SeedOrNow()
	gen, err := generation.NewGenerator(opts, rand.New(rand.NewSource(seed)), s.logMessage)
	if err != nil {
		return err
	}

	bg, err := gen.Initialize()
	if err != nil {
		return fmt.Errorf("initialize seed %d: %w", seed, err)
	}
	if err := s.write(ctx, conn, bg); err != nil {
		return err
	}

	var ticker *time.Ticker
	if s.interval > 0 {
		ticker = time.NewTicker(s.interval)
		defer ticker.Stop()
	}

	for {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}

		d := gen.NextDraw()
		if err := s.write(ctx, conn, d); err != nil {
			return err
		}
		if d.IsEnd() {
			return nil
		}
	}
}

func (s *Server) write(ctx context.Context, conn *websocket.Conn, d generation.DrawInstruction) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, d); err != nil {
		return fmt.Errorf("write draw instruction: %w", err)
	}
	return nil
}
