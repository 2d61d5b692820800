// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package spinner implements the drawable owned by the render worker: a
// magenta square that rotates while idle and points toward the view center
// while the user drags.
//
// A Square is not safe for concurrent use. The worker goroutine owns it and
// calls Paint and the pointer methods strictly in sequence.
//
// Basic usage:
//
//	sq, err := spinner.New(geometry.Sz(800, 600))
//	if err != nil {
//	    return err
//	}
//	r, _ := render.NewSoftwareRenderer(sq.Size())
//	frame, _ := r.Render(sq)
package spinner
