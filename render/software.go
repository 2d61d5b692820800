// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/geometry"
)

// ErrRendererClosed is returned when a closed renderer is used.
var ErrRendererClosed = errors.New("render: renderer is closed")

// SoftwareRenderer renders painters with a gg.Context on the CPU.
//
// One gg.Context is kept for the renderer's lifetime and reused every frame;
// only the returned ARGB32 slice is allocated per frame.
type SoftwareRenderer struct {
	dc     *gg.Context
	size   geometry.Size
	log    *slog.Logger
	closed bool
}

// NewSoftwareRenderer creates a renderer producing frames of the given size.
func NewSoftwareRenderer(size geometry.Size, opts ...Option) (*SoftwareRenderer, error) {
	if size.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = ggview.Logger()
	}

	if o.device != nil {
		// Non-fatal: without a registered accelerator gg keeps rendering on
		// the CPU.
		if err := gg.SetAcceleratorDeviceProvider(o.device); err != nil {
			o.logger.Debug("render: device provider not shared", "err", err)
		}
	}

	return &SoftwareRenderer{
		dc:   gg.NewContext(size.Width, size.Height),
		size: size,
		log:  o.logger,
	}, nil
}

// Render clears the context, lets p paint, and returns the frame as ARGB32.
func (r *SoftwareRenderer) Render(p Painter) ([]byte, error) {
	if r.closed {
		return nil, ErrRendererClosed
	}

	r.dc.Identity()
	r.dc.ClearPath()
	r.dc.Clear()

	p.Paint(r.dc)

	// CPU-rendered content is already in the pixmap if this fails.
	if err := r.dc.FlushGPU(); err != nil {
		r.log.Warn("render: gpu flush failed", "err", err)
	}

	pix := r.dc.ResizeTarget().Data()
	frame := make([]byte, len(pix))
	ARGBFromRGBA(frame, pix)
	return frame, nil
}

// Resize changes the frame size. The context keeps no pixels across a resize.
func (r *SoftwareRenderer) Resize(size geometry.Size) error {
	if r.closed {
		return ErrRendererClosed
	}
	if size.Empty() {
		return fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if size == r.size {
		return nil
	}
	if err := r.dc.Resize(size.Width, size.Height); err != nil {
		return fmt.Errorf("render: context resize failed: %w", err)
	}
	r.log.Debug("render: resized", "size", size)
	r.size = size
	return nil
}

// Size returns the current frame size.
func (r *SoftwareRenderer) Size() geometry.Size {
	return r.size
}

// Close releases the gg context. Close is idempotent.
func (r *SoftwareRenderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	err := r.dc.Close()
	r.dc = nil
	return err
}

// Ensure SoftwareRenderer implements Renderer.
var _ Renderer = (*SoftwareRenderer)(nil)
