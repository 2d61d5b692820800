// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/compositor"
	"github.com/gogpu/ggview/frametiming"
	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/input"
	"github.com/gogpu/ggview/render"
	"github.com/gogpu/ggview/scene"
	"github.com/gogpu/ggview/worker"
)

// ErrClosed is returned once the bridge has shut down.
var ErrClosed = errors.New("bridge: closed")

// Host is everything the bridge needs from its environment.
type Host struct {
	Scene compositor.Scene
	View  compositor.View

	// Input is optional. When set, the bridge registers HandleInput on
	// activation.
	Input compositor.InputSource

	// Clock defaults to a monotonic clock.
	Clock frametiming.Clock

	// Quit is called once when the quit key is pressed.
	Quit func()
}

// Bridge drives one view.
type Bridge struct {
	id         uuid.UUID
	host       Host
	newApp     worker.AppFactory
	workerOpts []worker.Option
	quitUsage  uint32
	log        *slog.Logger

	state    atomic.Int32
	worker   atomic.Pointer[worker.Worker]
	quitOnce sync.Once

	// mu serializes invalidations and Close.
	mu      sync.Mutex
	size    geometry.Size
	tracker *frametiming.Tracker
	buf     *render.PixelBuffer
	stats   Stats
}

// New creates an uninitialized bridge. The worker is started by the first
// invalidation carrying a layout.
func New(host Host, factory worker.AppFactory, opts ...Option) (*Bridge, error) {
	if host.Scene == nil || host.View == nil {
		return nil, errors.New("bridge: host needs a scene and a view")
	}
	if factory == nil {
		return nil, errors.New("bridge: nil app factory")
	}
	if host.Clock == nil {
		host.Clock = frametiming.NewMonotonicClock()
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New()
	log := o.logger
	if log == nil {
		log = ggview.Logger()
	}
	log = log.With("view", id.String())

	workerOpts := append([]worker.Option{worker.WithLogger(log)}, o.workerOpts...)

	return &Bridge{
		id:         id,
		host:       host,
		newApp:     factory,
		workerOpts: workerOpts,
		quitUsage:  o.quitUsage,
		log:        log,
		tracker:    frametiming.NewTracker(),
	}, nil
}

// ID returns the view identifier.
func (b *Bridge) ID() uuid.UUID { return b.id }

// State returns the current lifecycle state.
func (b *Bridge) State() State { return State(b.state.Load()) }

// OnInvalidation handles one compositor invalidation. Once the bridge is
// Active it publishes exactly one scene before returning nil.
func (b *Bridge) OnInvalidation(inv compositor.Invalidation) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.State() {
	case StateClosed:
		return ErrClosed
	case StateUninitialized:
		if inv.Layout == nil || inv.Layout.Empty() {
			b.log.Debug("bridge: waiting for layout")
			return nil
		}
		if err := b.activate(*inv.Layout); err != nil {
			return err
		}
	case StateActive:
		if inv.Layout != nil && !inv.Layout.Empty() && *inv.Layout != b.size {
			if err := b.resize(*inv.Layout); err != nil {
				return err
			}
		}
	}
	return b.frame(inv)
}

func (b *Bridge) activate(size geometry.Size) error {
	w, err := worker.Start(size, b.newApp, b.workerOpts...)
	if err != nil {
		return fmt.Errorf("bridge: start worker: %w", err)
	}
	buf, err := render.NewPixelBuffer(size)
	if err != nil {
		_ = w.Close()
		return fmt.Errorf("bridge: %w", err)
	}

	b.worker.Store(w)
	b.size = size
	b.buf = buf
	b.state.Store(int32(StateActive))

	if b.host.Input != nil {
		if err := b.host.Input.SetListener(b.HandleInput); err != nil {
			return b.fail(fmt.Errorf("bridge: register input: %w", err))
		}
	}
	b.log.Info("bridge: view active", "size", size)
	return nil
}

func (b *Bridge) resize(size geometry.Size) error {
	if err := b.worker.Load().Resize(size); err != nil {
		return b.fail(fmt.Errorf("bridge: resize worker: %w", err))
	}
	b.log.Debug("bridge: layout changed", "from", b.size, "to", size)
	b.size = size
	return nil
}

func (b *Bridge) frame(inv compositor.Invalidation) error {
	timing := b.tracker.Update(inv.Timing, b.host.Clock.Now())
	version := inv.SceneVersion

	f, err := b.worker.Load().Draw()
	if err != nil {
		return b.fail(fmt.Errorf("bridge: draw: %w", err))
	}

	realloc, err := b.buf.Ensure(f.Size)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}
	if realloc {
		b.log.Debug("bridge: pixel buffer reallocated", "size", f.Size)
	}
	if err := b.buf.Write(f.Pixels); err != nil {
		b.stats.DroppedFrames++
		b.log.Warn("bridge: frame dropped", "err", err)
		return fmt.Errorf("bridge: %w", err)
	}

	if err := b.host.Scene.Update(scene.NewImageUpdate(b.buf)); err != nil {
		return b.fail(fmt.Errorf("bridge: scene update: %w", err))
	}
	meta := scene.Metadata{Version: version, PresentationTime: timing.PresentationTime}
	if err := b.host.Scene.Publish(meta); err != nil {
		return b.fail(fmt.Errorf("bridge: publish: %w", err))
	}
	b.stats.Published++
	b.stats.LastVersion = version

	if err := b.host.View.Invalidate(); err != nil {
		return b.fail(fmt.Errorf("bridge: invalidate: %w", err))
	}

	b.log.Debug("bridge: published", "version", version, "timing", timing)
	return nil
}

// fail closes the bridge when a peer is gone. Other errors are returned
// unchanged and the bridge stays active.
func (b *Bridge) fail(err error) error {
	if !errors.Is(err, compositor.ErrClosed) && !errors.Is(err, worker.ErrClosed) {
		return err
	}
	b.log.Debug("bridge: peer closed", "err", err)
	b.closeLocked()
	return fmt.Errorf("%w: %w", ErrClosed, err)
}

// HandleInput classifies a raw compositor input event and applies it.
// Unrecognized events are ignored. Safe to call from any goroutine.
func (b *Bridge) HandleInput(raw any) {
	ev := input.Classify(raw)
	switch ev.Kind {
	case input.KindKey:
		if ev.HIDUsage != b.quitUsage {
			return
		}
		b.log.Info("bridge: quit key")
		_ = b.Close()
		b.quitOnce.Do(func() {
			if b.host.Quit != nil {
				b.host.Quit()
			}
		})
	case input.KindPointerDown, input.KindPointerMove, input.KindPointerUp:
		b.pointer(ev)
	case input.KindMetrics, input.KindOther:
		// ignored
	}
}

func (b *Bridge) pointer(ev input.Event) {
	if b.State() != StateActive {
		return
	}
	w := b.worker.Load()
	if w == nil {
		return
	}

	var err error
	switch ev.Kind {
	case input.KindPointerDown:
		err = w.PointerDown(ev.PointerID, ev.Point)
	case input.KindPointerMove:
		err = w.PointerMove(ev.PointerID, ev.Point)
	case input.KindPointerUp:
		err = w.PointerUp(ev.PointerID, ev.Point)
	}
	if err != nil {
		b.log.Debug("bridge: pointer event dropped", "kind", ev.Kind, "err", err)
	}
}

// Close stops the worker. No scene is published afterwards.
// Close waits for an in-flight frame to finish and is idempotent.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closeLocked()
}

func (b *Bridge) closeLocked() error {
	if State(b.state.Swap(int32(StateClosed))) == StateClosed {
		return nil
	}
	w := b.worker.Load()
	if w == nil {
		return nil
	}
	err := w.Close()
	if errors.Is(err, worker.ErrProtocol) {
		return err
	}
	b.log.Info("bridge: closed", "published", b.stats.Published)
	return nil
}

// Ensure Bridge implements compositor.Listener.
var _ compositor.Listener = (*Bridge)(nil)
