// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geometry provides the integer value types shared by the view
// bridge, the render worker and the compositor contract.
package geometry

import "fmt"

// Size is a width and height in pixels.
//
// Sizes of views and buffers are never negative. Sub may produce negative
// components when a Size is used as a delta.
type Size struct {
	Width, Height int
}

// Sz is a convenience function to create a Size.
func Sz(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns Width*Height, or 0 for an empty size.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.Width * s.Height
}

// String implements fmt.Stringer.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Point is an integer coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// ToSize reinterprets the point as a Size (X as width, Y as height).
func (p Point) ToSize() Size {
	return Size{Width: p.X, Height: p.Y}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// RectOf returns the rectangle at the origin with the given size.
func RectOf(s Size) Rect {
	return Rect{Size: s}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Size.Empty()
}

// Center returns the integer center of the rectangle, rounding down.
func (r Rect) Center() Point {
	return Point{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// Contains reports whether p lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}
