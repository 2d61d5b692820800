// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render produces view frames with gg and holds them in the shared
// pixel region a compositor reads.
//
// # Pixel format
//
// Frames and PixelBuffer contents are tightly packed, row-major, 4 bytes per
// pixel, premultiplied ARGB32 in little-endian byte order (B, G, R, A in
// memory). The stride is always width*4. The matching texture format tag is
// gputypes.TextureFormatBGRA8Unorm.
//
// gg draws into premultiplied RGBA pixmaps; SoftwareRenderer converts each
// frame into a freshly allocated ARGB32 slice owned by the caller.
//
// # Usage
//
//	r, err := render.NewSoftwareRenderer(geometry.Sz(800, 600))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	frame, err := r.Render(painter)
//
//	buf, _ := render.NewPixelBuffer(r.Size())
//	if err := buf.Write(frame); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// SoftwareRenderer and PixelBuffer are NOT safe for concurrent use. The
// renderer belongs to the render worker goroutine and the buffer to the view
// bridge.
package render
