// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spinner

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/geometry"
)

// Defaults for a new Square.
const (
	DefaultLabel    = "Touch or click to drag the square"
	DefaultFontSize = 72.0
	DefaultStep     = 0.01
	InitialAngle    = 0.785398
)

// labelTop is the distance from the top edge to the top of the label.
const labelTop = 20

// Square is a rotating square with a text label.
type Square struct {
	size     geometry.Size
	bounds   geometry.Rect
	center   geometry.Point
	angle    float64
	step     float64
	tracking bool
	label    string
	face     text.Face
}

// New creates a Square laid out for size.
func New(size geometry.Size, opts ...Option) (*Square, error) {
	s := &Square{
		angle: InitialAngle,
		step:  DefaultStep,
		label: DefaultLabel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.face == nil {
		src, err := DefaultFont()
		if err != nil {
			return nil, fmt.Errorf("spinner: default font: %w", err)
		}
		s.face = src.Face(DefaultFontSize)
	}
	s.Resize(size)
	return s, nil
}

// Resize recomputes the square layout for a new view size.
func (s *Square) Resize(size geometry.Size) {
	s.size = size
	extent := min(size.Width/2, size.Height/2)
	s.bounds = geometry.Rect{
		Origin: geometry.Pt(size.Width/2-extent/2, size.Height/2-extent/2),
		Size:   geometry.Sz(extent, extent),
	}
	s.center = geometry.RectOf(size).Center()
}

// Size returns the view size the square is laid out for.
func (s *Square) Size() geometry.Size { return s.size }

// Bounds returns the unrotated square.
func (s *Square) Bounds() geometry.Rect { return s.bounds }

// Angle returns the current rotation in radians.
func (s *Square) Angle() float64 { return s.angle }

// Tracking reports whether a drag is in progress.
func (s *Square) Tracking() bool { return s.tracking }

// Label returns the label text.
func (s *Square) Label() string { return s.label }

// Paint draws the label and the square. When no drag is in progress the
// angle advances by one step after the square is drawn.
func (s *Square) Paint(dc *gg.Context) {
	if s.label != "" {
		dc.SetFont(s.face)
		dc.SetRGB(1, 1, 1)
		w, _ := dc.MeasureString(s.label)
		baseline := labelTop + s.face.Metrics().Ascent
		dc.DrawString(s.label, (float64(s.size.Width)-w)/2, baseline)
	}

	if !s.bounds.Empty() {
		half := float64(s.bounds.Size.Width) / 2
		cx := float64(s.bounds.Origin.X) + half
		cy := float64(s.bounds.Origin.Y) + half

		dc.Push()
		dc.SetRGB(1, 0, 1)
		dc.Translate(cx, cy)
		dc.Rotate(s.angle)
		dc.DrawRectangle(-half, -half, 2*half, 2*half)
		if err := dc.Fill(); err != nil {
			ggview.Logger().Debug("spinner: fill failed", "err", err)
		}
		dc.Pop()
	}

	if !s.tracking {
		s.angle += s.step
	}
}

// PointerDown starts a drag.
func (s *Square) PointerDown(_ int, _ geometry.Point) {
	s.tracking = true
}

// PointerMove points the square from p toward the view center while a drag
// is in progress.
func (s *Square) PointerMove(_ int, p geometry.Point) {
	if !s.tracking {
		return
	}
	s.angle = math.Atan2(float64(s.center.Y-p.Y), float64(s.center.X-p.X))
}

// PointerUp ends a drag.
func (s *Square) PointerUp(_ int, _ geometry.Point) {
	s.tracking = false
}
