// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/compositor"
	"github.com/gogpu/ggview/frametiming"
	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/input"
	"github.com/gogpu/ggview/render"
	"github.com/gogpu/ggview/scene"
)

// ErrStaleVersion is returned by Publish when the version does not match
// the last delivered invalidation.
var ErrStaleVersion = errors.New("headless: stale scene version")

// inputQueueSize bounds injected events waiting for the run loop.
const inputQueueSize = 64

// Published describes one published frame.
type Published struct {
	Version          uint32        `json:"version"`
	PresentationTime int64         `json:"presentation_time"`
	Size             geometry.Size `json:"size"`
}

// Stats is a snapshot of compositor counters.
type Stats struct {
	Size             geometry.Size `json:"size"`
	IntervalNanos    int64         `json:"interval_ns"`
	Invalidations    uint64        `json:"invalidations"`
	Published        uint64        `json:"published"`
	InputEvents      uint64        `json:"input_events"`
	LastVersion      uint32        `json:"last_version"`
	LastPresentation int64         `json:"last_presentation_time"`
}

// Compositor is a display-less compositor for a single view.
type Compositor struct {
	interval  time.Duration
	clock     frametiming.Clock
	maxFrames uint64
	log       *slog.Logger

	inputs    chan any
	done      chan struct{}
	closeOnce sync.Once

	mu          sync.Mutex
	size        geometry.Size
	layoutDirty bool
	pending     bool
	version     uint32
	updated     bool
	staged      *render.PixelBuffer
	front       *render.PixelBuffer
	listener    func(raw any)
	subs        map[int]chan Published
	nextSub     int
	stats       Stats
}

// New creates a compositor presenting a view of the given size.
func New(size geometry.Size, opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = frametiming.NewMonotonicClock()
	}
	if o.logger == nil {
		o.logger = ggview.Logger()
	}
	return &Compositor{
		interval:    o.interval,
		clock:       o.clock,
		maxFrames:   o.maxFrames,
		log:         o.logger,
		inputs:      make(chan any, inputQueueSize),
		done:        make(chan struct{}),
		size:        size,
		layoutDirty: true,
		subs:        make(map[int]chan Published),
		stats:       Stats{Size: size, IntervalNanos: int64(o.interval)},
	}
}

// Run drives l until ctx is done, the compositor is closed or the frame
// limit is reached; those cases return nil. An error from l ends Run and
// is returned.
//
// The first invalidation, carrying the layout, is delivered immediately.
// Input events and invalidations are delivered on the calling goroutine.
func (c *Compositor) Run(ctx context.Context, l compositor.Listener) error {
	if c.isClosed() {
		return nil
	}
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	if err := c.deliver(l); err != nil {
		return err
	}
	for {
		if c.limitReached() {
			c.log.Info("headless: frame limit reached", "frames", c.maxFrames)
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-c.done:
			return nil
		case raw := <-c.inputs:
			c.dispatch(raw)
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			if !c.takePending() {
				continue
			}
			if err := c.deliver(l); err != nil {
				return err
			}
		}
	}
}

func (c *Compositor) deliver(l compositor.Listener) error {
	now := c.clock.Now()
	interval := int64(c.interval)

	c.mu.Lock()
	c.version++
	inv := compositor.Invalidation{
		Timing: frametiming.Timing{
			BaseTime:             now,
			PublishDeadline:      now + interval/2,
			PresentationTime:     now + interval,
			PresentationInterval: interval,
		},
		SceneVersion: c.version,
	}
	if c.layoutDirty {
		size := c.size
		inv.Layout = &size
		c.layoutDirty = false
	}
	c.stats.Invalidations++
	c.mu.Unlock()

	if err := l.OnInvalidation(inv); err != nil {
		return fmt.Errorf("headless: view failed on version %d: %w", inv.SceneVersion, err)
	}
	return nil
}

func (c *Compositor) dispatch(raw any) {
	c.mu.Lock()
	fn := c.listener
	c.stats.InputEvents++
	c.mu.Unlock()
	if fn != nil {
		fn(raw)
	}
}

func (c *Compositor) takePending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.pending
	c.pending = false
	return p
}

func (c *Compositor) limitReached() bool {
	if c.maxFrames == 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats.Published >= c.maxFrames
}

// Update validates and stages a scene update.
func (c *Compositor) Update(u scene.Update) error {
	if c.isClosed() {
		return compositor.ErrClosed
	}
	if err := u.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	img := u.Resources[scene.ContentResourceID]
	if img == nil {
		return fmt.Errorf("%w: no content resource", scene.ErrInvalidUpdate)
	}
	if c.staged == nil {
		buf, err := render.NewPixelBuffer(img.Image.Size)
		if err != nil {
			return err
		}
		c.staged = buf
	}
	if _, err := c.staged.Ensure(img.Image.Size); err != nil {
		return err
	}
	// The copy stands in for scanout from the view's buffer.
	if err := c.staged.Write(img.Image.Buffer.Pixels()); err != nil {
		return err
	}
	c.updated = true
	return nil
}

// Publish presents the staged update.
func (c *Compositor) Publish(m scene.Metadata) error {
	if c.isClosed() {
		return compositor.ErrClosed
	}

	c.mu.Lock()
	if m.Version != c.version {
		c.mu.Unlock()
		return fmt.Errorf("%w: got %d, want %d", ErrStaleVersion, m.Version, c.version)
	}
	if !c.updated {
		c.mu.Unlock()
		return fmt.Errorf("%w: publish without update", scene.ErrInvalidUpdate)
	}
	c.updated = false
	c.front, c.staged = c.staged, c.front
	c.stats.Published++
	c.stats.LastVersion = m.Version
	c.stats.LastPresentation = m.PresentationTime
	p := Published{Version: m.Version, PresentationTime: m.PresentationTime, Size: c.front.Size()}
	for _, ch := range c.subs {
		select {
		case ch <- p:
		default:
		}
	}
	c.mu.Unlock()

	c.log.Debug("headless: published", "version", m.Version, "presentation", m.PresentationTime)
	return nil
}

// Invalidate requests an invalidation on the next vsync tick.
func (c *Compositor) Invalidate() error {
	if c.isClosed() {
		return compositor.ErrClosed
	}
	c.mu.Lock()
	c.pending = true
	c.mu.Unlock()
	return nil
}

// SetListener registers the input listener, replacing any previous one.
func (c *Compositor) SetListener(fn func(raw any)) error {
	if c.isClosed() {
		return compositor.ErrClosed
	}
	c.mu.Lock()
	c.listener = fn
	c.mu.Unlock()
	return nil
}

// Resize changes the view size. The next invalidation carries the new
// layout and one is requested.
func (c *Compositor) Resize(size geometry.Size) {
	c.mu.Lock()
	c.size = size
	c.stats.Size = size
	c.layoutDirty = true
	c.pending = true
	c.mu.Unlock()
}

// InjectPointer queues a pointer event for delivery on the run loop.
func (c *Compositor) InjectPointer(id uint32, phase input.Phase, x, y float32) error {
	return c.inject(input.PointerEvent{PointerID: id, Phase: phase, X: x, Y: y})
}

// InjectKey queues a key event for delivery on the run loop.
func (c *Compositor) InjectKey(hidUsage uint32) error {
	return c.inject(input.KeyboardEvent{HIDUsage: hidUsage})
}

func (c *Compositor) inject(raw any) error {
	// inputs may have room after Close; never queue into a closed compositor.
	select {
	case <-c.done:
		return compositor.ErrClosed
	default:
	}
	select {
	case <-c.done:
		return compositor.ErrClosed
	case c.inputs <- raw:
		return nil
	}
}

// Subscribe returns a channel receiving every publish and a function that
// cancels the subscription. Slow subscribers miss publishes.
func (c *Compositor) Subscribe() (<-chan Published, func()) {
	ch := make(chan Published, 1)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Snapshot returns a copy of the last published frame, or nil before the
// first publish.
func (c *Compositor) Snapshot() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.front == nil || c.stats.Published == 0 {
		return nil
	}
	return c.front.Image()
}

// Stats returns a snapshot of the compositor counters.
func (c *Compositor) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Close disconnects the view. Later calls from the view return
// compositor.ErrClosed and Run returns.
func (c *Compositor) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return nil
}

func (c *Compositor) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Ensure Compositor implements the compositor contract.
var (
	_ compositor.Scene       = (*Compositor)(nil)
	_ compositor.View        = (*Compositor)(nil)
	_ compositor.InputSource = (*Compositor)(nil)
)
