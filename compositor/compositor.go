// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compositor defines the contract between a view and the display
// compositor that presents it.
//
// The compositor drives the view: it delivers an Invalidation when the view
// may produce a frame, and the view answers with one Update and one Publish
// on its Scene, then asks for the next frame with View.Invalidate.
package compositor

import (
	"errors"

	"github.com/gogpu/ggview/frametiming"
	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/scene"
)

// ErrClosed is returned by compositor calls after the connection is gone.
var ErrClosed = errors.New("compositor: closed")

// Invalidation tells a view it may produce a new frame.
type Invalidation struct {
	// Layout is set when the view size is known or has changed.
	Layout *geometry.Size

	// Timing is the compositor's schedule for the upcoming frame.
	Timing frametiming.Timing

	// SceneVersion must be echoed in the Publish for this frame.
	SceneVersion uint32
}

// Scene receives a view's scene updates.
type Scene interface {
	Update(u scene.Update) error
	Publish(m scene.Metadata) error
}

// View lets a view request its next invalidation.
type View interface {
	Invalidate() error
}

// InputSource delivers raw input events to a single listener.
// The listener may be called from any goroutine.
type InputSource interface {
	SetListener(fn func(raw any)) error
}

// Listener is implemented by views.
type Listener interface {
	OnInvalidation(inv Invalidation) error
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(inv Invalidation) error

// OnInvalidation calls f(inv).
func (f ListenerFunc) OnInvalidation(inv Invalidation) error { return f(inv) }
