// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless is an in-process compositor for one view.
//
// It implements compositor.Scene, compositor.View and compositor.InputSource
// without a display. A vsync ticker paces invalidations: one is delivered per
// tick only while the view has asked for it with Invalidate, so the view is
// never ahead of its last publish. The last published frame can be read back
// with Snapshot.
//
//	hc := headless.New(geometry.Sz(800, 600), headless.WithMaxFrames(120))
//	b, _ := bridge.New(bridge.Host{Scene: hc, View: hc, Input: hc}, newApp)
//	err := hc.Run(ctx, b)
package headless
