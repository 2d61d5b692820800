// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package debugserver serves a read-only HTTP inspector for a running view.
//
// Routes:
//
//	GET /stats      view and display counters as JSON
//	GET /frame.png  the last published frame
//	GET /ws         a websocket streaming stats after every publish
package debugserver

import (
	"context"
	"errors"
	"image"
	"image/png"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/bridge"
	"github.com/gogpu/ggview/compositor/headless"
)

// View reports view statistics.
type View interface {
	Stats() bridge.Stats
}

// Display is the compositor side of the inspector.
type Display interface {
	Stats() headless.Stats
	Snapshot() *image.RGBA
	Subscribe() (<-chan headless.Published, func())
}

// StatsResponse is the body of GET /stats and of each websocket message.
type StatsResponse struct {
	View    bridge.Stats        `json:"view"`
	Display headless.Stats      `json:"display"`
	Publish *headless.Published `json:"publish,omitempty"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	ErrorType    string `json:"errorType"`
	ErrorMessage string `json:"errorMessage"`
}

const shutdownTimeout = 2 * time.Second

// Server is the inspector.
type Server struct {
	view     View
	display  Display
	router   *chi.Mux
	upgrader websocket.Upgrader
	log      *slog.Logger

	done     chan struct{}
	stopOnce sync.Once
}

// New creates an inspector for view and display. A nil logger uses
// ggview.Logger().
func New(view View, display Display, log *slog.Logger) *Server {
	if log == nil {
		log = ggview.Logger()
	}
	s := &Server{
		view:    view,
		display: display,
		log:     log,
		done:    make(chan struct{}),
	}
	r := chi.NewRouter()
	r.Use(s.accessLog)
	r.Get("/stats", s.handleStats)
	r.Get("/frame.png", s.handleFrame)
	r.Get("/ws", s.handleWS)
	s.router = r
	return s
}

// Handler returns the inspector routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve serves on ln until ctx is done, then shuts down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("debugserver: listening", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		s.stop()
		return err
	case <-ctx.Done():
	}

	s.stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *Server) snapshot(p *headless.Published) StatsResponse {
	return StatsResponse{
		View:    s.view.Stats(),
		Display: s.display.Stats(),
		Publish: p,
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.snapshot(nil))
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	img := s.display.Snapshot()
	if img == nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, &ErrorResponse{
			ErrorType:    "Frame.NotPublished",
			ErrorMessage: "no frame has been published yet",
		})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.log.Debug("debugserver: png encode failed", "err", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Debug("debugserver: websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	published, cancel := s.display.Subscribe()
	defer cancel()

	// Drain the client so close frames are seen.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case <-s.done:
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"))
			return
		case p := <-published:
			if err := conn.WriteJSON(s.snapshot(&p)); err != nil {
				s.log.Debug("debugserver: websocket write failed", "err", err)
				return
			}
		}
	}
}
