// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggview/geometry"
)

// BytesPerPixel is the size of one ARGB32 pixel.
const BytesPerPixel = 4

// Errors returned by PixelBuffer operations.
var (
	// ErrInvalidSize is returned for negative or empty dimensions.
	ErrInvalidSize = errors.New("render: invalid size")

	// ErrSizeMismatch is returned when a frame does not match the buffer size.
	ErrSizeMismatch = errors.New("render: frame size mismatch")
)

// Target is a CPU-readable frame destination.
//
// Targets expose their pixels directly; the compositor reads them without a
// further copy.
type Target interface {
	// Size returns the target dimensions in pixels.
	Size() geometry.Size

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to the pixel data.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixelBuffer is the pixel region shared between a view and its compositor.
//
// The buffer is rewritten in place every frame and reallocated only when the
// frame size changes.
type PixelBuffer struct {
	size geometry.Size
	data []byte
}

// NewPixelBuffer allocates a zeroed buffer of size.Width*size.Height*4 bytes.
func NewPixelBuffer(size geometry.Size) (*PixelBuffer, error) {
	if size.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return &PixelBuffer{
		size: size,
		data: make([]byte, FrameLen(size)),
	}, nil
}

// FrameLen returns the byte length of an ARGB32 frame of the given size.
func FrameLen(size geometry.Size) int {
	return size.Area() * BytesPerPixel
}

// Size returns the buffer dimensions.
func (b *PixelBuffer) Size() geometry.Size {
	return b.size
}

// Format returns gputypes.TextureFormatBGRA8Unorm, the in-memory byte order
// of little-endian ARGB32.
func (b *PixelBuffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// Pixels returns the buffer memory. The slice aliases the buffer.
func (b *PixelBuffer) Pixels() []byte {
	return b.data
}

// Stride returns Width*4.
func (b *PixelBuffer) Stride() int {
	return b.size.Width * BytesPerPixel
}

// Len returns the buffer length in bytes.
func (b *PixelBuffer) Len() int {
	return len(b.data)
}

// Ensure reallocates the buffer if size differs from the current size.
// It reports whether a reallocation happened. Contents are not preserved.
func (b *PixelBuffer) Ensure(size geometry.Size) (bool, error) {
	if size.Empty() {
		return false, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if size == b.size {
		return false, nil
	}
	b.size = size
	b.data = make([]byte, FrameLen(size))
	return true, nil
}

// Write copies a complete ARGB32 frame into the buffer.
func (b *PixelBuffer) Write(frame []byte) error {
	if len(frame) != len(b.data) {
		return fmt.Errorf("%w: got %d bytes, want %d for %v",
			ErrSizeMismatch, len(frame), len(b.data), b.size)
	}
	copy(b.data, frame)
	return nil
}

// Image returns a copy of the buffer as an *image.RGBA.
// image.RGBA is premultiplied like the buffer, so only the channel order
// changes.
func (b *PixelBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.size.Width, b.size.Height))
	RGBAFromARGB(img.Pix, b.data)
	return img
}

// Ensure PixelBuffer implements Target.
var _ Target = (*PixelBuffer)(nil)
