// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggview/geometry"
)

// Painter draws one frame onto a gg context.
//
// The context is cleared to transparent with an identity transform before
// Paint is called. Painters may advance their own animation state.
type Painter interface {
	Paint(dc *gg.Context)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(dc *gg.Context)

// Paint calls f(dc).
func (f PainterFunc) Paint(dc *gg.Context) { f(dc) }

// Renderer turns a Painter into an owned ARGB32 frame.
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine.
type Renderer interface {
	// Render paints one frame and returns a newly allocated ARGB32 slice of
	// Size().Width*Size().Height*4 bytes. The caller owns the slice.
	Render(p Painter) ([]byte, error)

	// Resize changes the frame size for subsequent renders.
	Resize(size geometry.Size) error

	// Size returns the current frame size.
	Size() geometry.Size

	// Close releases the renderer. Close is idempotent.
	Close() error
}
