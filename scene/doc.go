// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene describes the retained scene a view submits to the
// compositor.
//
// A view publishes exactly one image resource, the shared pixel buffer, and
// one full-viewport opaque node that displays it. Updates are rebuilt every
// frame and replace the previous scene wholesale.
//
//	upd := scene.NewImageUpdate(buf)
//	if err := s.Update(upd); err != nil {
//	    return err
//	}
//	err := s.Publish(scene.Metadata{Version: v, PresentationTime: t})
package scene
