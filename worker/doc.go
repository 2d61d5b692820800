// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package worker runs a drawable on its own goroutine and hands rendered
// frames back on request.
//
// A Worker owns the App, the Renderer and all interaction state. The caller
// talks to it through one bounded message channel: Start is always the first
// message, Draw is a blocking request/reply, and pointer events are
// fire-and-forget messages observed in the order they were sent relative to
// draws. At most one draw is outstanding per Worker.
//
//	newApp := func(size geometry.Size) (worker.App, error) {
//	    return spinner.New(size)
//	}
//	w, err := worker.Start(geometry.Sz(800, 600), newApp)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	frame, err := w.Draw()
package worker
