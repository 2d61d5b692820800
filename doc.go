// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggview drives a gg-rendered view from a display compositor.
//
// # Overview
//
// A compositor tells a view when it may produce a frame (an invalidation).
// ggview answers every invalidation with exactly one published scene update:
//
//	compositor -> bridge.OnInvalidation -> frametiming.Tracker.Update
//	           -> worker.Draw (blocks) -> render.PixelBuffer
//	           -> scene.Update + scene.Metadata -> compositor.Publish
//
// The render worker runs on its own goroutine and owns the drawable state.
// The bridge talks to it through a single bounded channel, so there is never
// more than one draw in flight and pointer events are observed in the order
// they were sent.
//
// # Packages
//
//   - geometry: Size, Point, Rect value types
//   - frametiming: corrects compositor timing hints (monotonic, lag snap)
//   - render: shared ARGB pixel buffer and the gg software renderer
//   - spinner: the rotating-square drawable
//   - worker: render worker goroutine and its message protocol
//   - scene: one-node scene updates and publish metadata
//   - input: wire input shapes and the closed event union
//   - compositor: compositor contract; compositor/headless implements it in-process
//   - bridge: the view bridge state machine
//
// # Logging
//
// ggview is silent by default. Call SetLogger to route diagnostics from all
// sub-packages to a log/slog handler.
package ggview
