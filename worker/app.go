// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package worker

import (
	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/render"
)

// App is the drawable state owned by a Worker.
//
// All methods are called from the worker goroutine, one at a time.
type App interface {
	render.Painter

	PointerDown(id int, p geometry.Point)
	PointerMove(id int, p geometry.Point)
	PointerUp(id int, p geometry.Point)
}

// Resizer is implemented by apps that relayout on a size change.
type Resizer interface {
	Resize(size geometry.Size)
}

// AppFactory creates the App once the worker knows its size.
type AppFactory func(size geometry.Size) (App, error)

// RendererFactory creates the Renderer used by the worker.
type RendererFactory func(size geometry.Size) (render.Renderer, error)

// Frame is one rendered frame. The worker gives up ownership of Pixels.
type Frame struct {
	Size   geometry.Size
	Pixels []byte
}
