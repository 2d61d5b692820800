// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggview/geometry"
)

func fillRed(dc *gg.Context) {
	dc.SetRGB(1, 0, 0)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	_ = dc.Fill()
}

func TestSoftwareRendererFrame(t *testing.T) {
	r, err := NewSoftwareRenderer(geometry.Sz(200, 100))
	if err != nil {
		t.Fatalf("NewSoftwareRenderer() error = %v", err)
	}
	defer r.Close()

	frame, err := r.Render(PainterFunc(fillRed))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(frame) != 80000 {
		t.Fatalf("len(frame) = %d, want 80000", len(frame))
	}

	// Center pixel, ARGB32 little-endian: B, G, R, A.
	i := (50*200 + 100) * BytesPerPixel
	if got := frame[i : i+4]; got[0] != 0 || got[1] != 0 || got[2] != 255 || got[3] != 255 {
		t.Errorf("center pixel = %v, want [0 0 255 255]", got)
	}
}

func TestSoftwareRendererClearsBetweenFrames(t *testing.T) {
	r, err := NewSoftwareRenderer(geometry.Sz(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := r.Render(PainterFunc(fillRed)); err != nil {
		t.Fatal(err)
	}
	frame, err := r.Render(PainterFunc(func(*gg.Context) {}))
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range frame {
		if b != 0 {
			t.Fatalf("frame[%d] = %d, want transparent frame after empty paint", i, b)
		}
	}
}

func TestSoftwareRendererFramesAreOwned(t *testing.T) {
	r, _ := NewSoftwareRenderer(geometry.Sz(4, 4))
	defer r.Close()

	a, _ := r.Render(PainterFunc(fillRed))
	b, _ := r.Render(PainterFunc(fillRed))
	if &a[0] == &b[0] {
		t.Error("Render() should return a new slice per frame")
	}
}

func TestSoftwareRendererResize(t *testing.T) {
	r, _ := NewSoftwareRenderer(geometry.Sz(4, 4))
	defer r.Close()

	if err := r.Resize(geometry.Sz(8, 3)); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if r.Size() != geometry.Sz(8, 3) {
		t.Errorf("Size() = %v, want 8x3", r.Size())
	}
	frame, _ := r.Render(PainterFunc(fillRed))
	if len(frame) != 8*3*4 {
		t.Errorf("len(frame) = %d, want 96", len(frame))
	}
	if err := r.Resize(geometry.Sz(0, 3)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(empty) error = %v, want ErrInvalidSize", err)
	}
}

func TestSoftwareRendererClose(t *testing.T) {
	r, _ := NewSoftwareRenderer(geometry.Sz(4, 4), WithDeviceProvider(NullDeviceHandle{}))
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
	if _, err := r.Render(PainterFunc(fillRed)); !errors.Is(err, ErrRendererClosed) {
		t.Errorf("Render() after Close error = %v, want ErrRendererClosed", err)
	}
}

func TestNewSoftwareRendererInvalidSize(t *testing.T) {
	if _, err := NewSoftwareRenderer(geometry.Sz(0, 0)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewSoftwareRenderer(0x0) error = %v, want ErrInvalidSize", err)
	}
}
