// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/render"
)

var (
	// ErrProtocol reports a message sequence the worker cannot accept,
	// such as a message before start or a second start. It is terminal.
	ErrProtocol = errors.New("worker: protocol violation")

	// ErrClosed is returned once the worker has stopped.
	ErrClosed = errors.New("worker: closed")
)

// Worker renders an App on a dedicated goroutine.
type Worker struct {
	msgs chan message
	done chan struct{}

	// err is written by the worker goroutine before done is closed.
	err error

	drawMu    sync.Mutex
	closeOnce sync.Once
	frames    atomic.Uint64

	newApp      AppFactory
	newRenderer RendererFactory
	log         *slog.Logger

	// Owned by the worker goroutine.
	app      App
	renderer render.Renderer
}

// Start spawns a worker for size and initializes it. The start message is
// the first one the worker receives. Start blocks until the app and
// renderer exist.
func Start(size geometry.Size, factory AppFactory, opts ...Option) (*Worker, error) {
	if factory == nil {
		return nil, errors.New("worker: nil app factory")
	}
	w := newWorker(factory, opts...)
	go w.run()

	reply := make(chan result, 1)
	if err := w.send(message{kind: msgStart, size: size, reply: reply}); err != nil {
		return nil, err
	}
	if _, err := w.await(reply); err != nil {
		return nil, err
	}
	return w, nil
}

func newWorker(factory AppFactory, opts ...Option) *Worker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = ggview.Logger()
	}
	return &Worker{
		msgs:        make(chan message, 1),
		done:        make(chan struct{}),
		newApp:      factory,
		newRenderer: o.rendererFactory(),
		log:         log,
	}
}

// Draw renders one frame and blocks until it is ready. Concurrent calls are
// serialized so that only one draw is ever outstanding.
func (w *Worker) Draw() (Frame, error) {
	w.drawMu.Lock()
	defer w.drawMu.Unlock()

	reply := make(chan result, 1)
	if err := w.send(message{kind: msgDraw, reply: reply}); err != nil {
		return Frame{}, err
	}
	return w.await(reply)
}

// PointerDown forwards a pointer press.
func (w *Worker) PointerDown(id int, p geometry.Point) error {
	return w.send(message{kind: msgPointerDown, id: id, point: p})
}

// PointerMove forwards a pointer motion.
func (w *Worker) PointerMove(id int, p geometry.Point) error {
	return w.send(message{kind: msgPointerMove, id: id, point: p})
}

// PointerUp forwards a pointer release.
func (w *Worker) PointerUp(id int, p geometry.Point) error {
	return w.send(message{kind: msgPointerUp, id: id, point: p})
}

// Resize changes the frame size for subsequent draws.
func (w *Worker) Resize(size geometry.Size) error {
	if size.Empty() {
		return fmt.Errorf("%w: %v", render.ErrInvalidSize, size)
	}
	return w.send(message{kind: msgResize, size: size})
}

// Close stops the worker and waits for it to exit.
// It returns the terminal error if the worker had already failed.
func (w *Worker) Close() error {
	w.closeOnce.Do(func() {
		_ = w.send(message{kind: msgStop})
	})
	<-w.done
	return w.err
}

// Done is closed when the worker goroutine exits.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Err returns the terminal error, or nil while running or after a normal
// stop.
func (w *Worker) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}

// Frames returns the number of frames rendered so far.
func (w *Worker) Frames() uint64 {
	return w.frames.Load()
}

func (w *Worker) send(m message) error {
	// The channel may have room after exit; never queue into a dead worker.
	select {
	case <-w.done:
		return w.closedErr()
	default:
	}
	select {
	case w.msgs <- m:
		return nil
	case <-w.done:
		return w.closedErr()
	}
}

func (w *Worker) await(reply chan result) (Frame, error) {
	select {
	case r := <-reply:
		return r.frame, r.err
	case <-w.done:
		// The reply may have been sent just before exit.
		select {
		case r := <-reply:
			return r.frame, r.err
		default:
			return Frame{}, w.closedErr()
		}
	}
}

// closedErr must only be called after done is closed.
func (w *Worker) closedErr() error {
	if w.err != nil {
		return fmt.Errorf("%w: %w", ErrClosed, w.err)
	}
	return ErrClosed
}

func (w *Worker) run() {
	defer close(w.done)
	defer w.release()

	started := false
	for m := range w.msgs {
		if started == (m.kind == msgStart) {
			w.err = fmt.Errorf("%w: %s while started=%t", ErrProtocol, m.kind, started)
			w.log.Warn("worker: terminating", "err", w.err)
			reply(m, result{err: w.err})
			return
		}

		switch m.kind {
		case msgStart:
			if err := w.start(m.size); err != nil {
				w.err = err
				reply(m, result{err: err})
				return
			}
			started = true
			reply(m, result{})
		case msgDraw:
			reply(m, w.draw())
		case msgPointerDown:
			w.app.PointerDown(m.id, m.point)
		case msgPointerMove:
			w.app.PointerMove(m.id, m.point)
		case msgPointerUp:
			w.app.PointerUp(m.id, m.point)
		case msgResize:
			w.resize(m.size)
		case msgStop:
			w.log.Debug("worker: stopped", "frames", w.frames.Load())
			return
		}
	}
}

func (w *Worker) start(size geometry.Size) error {
	r, err := w.newRenderer(size)
	if err != nil {
		return fmt.Errorf("worker: create renderer: %w", err)
	}
	app, err := w.newApp(size)
	if err != nil {
		_ = r.Close()
		return fmt.Errorf("worker: create app: %w", err)
	}
	w.renderer = r
	w.app = app
	w.log.Info("worker: started", "size", size)
	return nil
}

func (w *Worker) draw() result {
	pix, err := w.renderer.Render(w.app)
	if err != nil {
		return result{err: fmt.Errorf("worker: render: %w", err)}
	}
	w.frames.Add(1)
	return result{frame: Frame{Size: w.renderer.Size(), Pixels: pix}}
}

func (w *Worker) resize(size geometry.Size) {
	if err := w.renderer.Resize(size); err != nil {
		w.log.Warn("worker: resize failed", "size", size, "err", err)
		return
	}
	if rs, ok := w.app.(Resizer); ok {
		rs.Resize(size)
	}
	w.log.Debug("worker: resized", "size", size)
}

func (w *Worker) release() {
	if w.renderer != nil {
		if err := w.renderer.Close(); err != nil {
			w.log.Warn("worker: renderer close failed", "err", err)
		}
	}
}

func reply(m message, r result) {
	if m.reply != nil {
		m.reply <- r
	}
}
