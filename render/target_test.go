// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggview/geometry"
)

func TestNewPixelBuffer(t *testing.T) {
	buf, err := NewPixelBuffer(geometry.Sz(200, 100))
	if err != nil {
		t.Fatalf("NewPixelBuffer() error = %v", err)
	}
	if buf.Len() != 80000 {
		t.Errorf("Len() = %d, want 80000", buf.Len())
	}
	if buf.Stride() != 800 {
		t.Errorf("Stride() = %d, want 800", buf.Stride())
	}
	if buf.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm", buf.Format())
	}
	if buf.Size() != geometry.Sz(200, 100) {
		t.Errorf("Size() = %v, want 200x100", buf.Size())
	}
}

func TestNewPixelBufferInvalid(t *testing.T) {
	for _, size := range []geometry.Size{{}, geometry.Sz(0, 10), geometry.Sz(-4, 10)} {
		if _, err := NewPixelBuffer(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewPixelBuffer(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestPixelBufferEnsure(t *testing.T) {
	buf, _ := NewPixelBuffer(geometry.Sz(4, 4))
	first := &buf.Pixels()[0]

	realloc, err := buf.Ensure(geometry.Sz(4, 4))
	if err != nil || realloc {
		t.Fatalf("Ensure(same) = %v, %v; want false, nil", realloc, err)
	}
	if &buf.Pixels()[0] != first {
		t.Error("Ensure(same) should keep the same memory")
	}

	realloc, err = buf.Ensure(geometry.Sz(8, 2))
	if err != nil || !realloc {
		t.Fatalf("Ensure(new) = %v, %v; want true, nil", realloc, err)
	}
	if buf.Len() != 8*2*4 {
		t.Errorf("Len() after Ensure = %d, want 64", buf.Len())
	}

	if _, err := buf.Ensure(geometry.Sz(0, 2)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Ensure(empty) error = %v, want ErrInvalidSize", err)
	}
}

func TestPixelBufferWrite(t *testing.T) {
	buf, _ := NewPixelBuffer(geometry.Sz(2, 1))

	frame := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := buf.Write(frame); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	frame[0] = 99
	if buf.Pixels()[0] != 1 {
		t.Error("Write() should copy, not alias, the frame")
	}

	if err := buf.Write(frame[:4]); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Write(short) error = %v, want ErrSizeMismatch", err)
	}
}

func TestPixelBufferImage(t *testing.T) {
	buf, _ := NewPixelBuffer(geometry.Sz(1, 1))
	// Opaque red in ARGB32 little-endian order.
	if err := buf.Write([]byte{0, 0, 255, 255}); err != nil {
		t.Fatal(err)
	}
	img := buf.Image()
	got := img.RGBAAt(0, 0)
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("Image().RGBAAt(0,0) = %v, want opaque red", got)
	}
}
