// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geometry

import "testing"

func TestSizeArithmetic(t *testing.T) {
	a := Sz(200, 100)
	b := Sz(20, 30)

	if got := a.Add(b); got != Sz(220, 130) {
		t.Errorf("Add() = %v, want 220x130", got)
	}
	if got := a.Sub(b); got != Sz(180, 70) {
		t.Errorf("Sub() = %v, want 180x70", got)
	}
	if got := b.Sub(a); got != Sz(-180, -70) {
		t.Errorf("Sub() as delta = %v, want -180x-70", got)
	}
}

func TestSizeEmptyAndArea(t *testing.T) {
	tests := []struct {
		size  Size
		empty bool
		area  int
	}{
		{Sz(200, 100), false, 20000},
		{Sz(0, 100), true, 0},
		{Sz(100, 0), true, 0},
		{Sz(-1, 5), true, 0},
		{Sz(1, 1), false, 1},
	}
	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			if got := tt.size.Empty(); got != tt.empty {
				t.Errorf("Empty() = %v, want %v", got, tt.empty)
			}
			if got := tt.size.Area(); got != tt.area {
				t.Errorf("Area() = %d, want %d", got, tt.area)
			}
		})
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(10, 20)
	q := Pt(3, -4)

	if got := p.Add(q); got != Pt(13, 16) {
		t.Errorf("Add() = %v, want (13,16)", got)
	}
	if got := p.Sub(q); got != Pt(7, 24) {
		t.Errorf("Sub() = %v, want (7,24)", got)
	}
	if got := p.Sub(q).ToSize(); got != Sz(7, 24) {
		t.Errorf("ToSize() = %v, want 7x24", got)
	}
}

func TestRect(t *testing.T) {
	r := RectOf(Sz(200, 100))

	if r.Empty() {
		t.Error("Empty() = true for 200x100")
	}
	if got := r.Center(); got != Pt(100, 50) {
		t.Errorf("Center() = %v, want (100,50)", got)
	}
	if !r.Contains(Pt(0, 0)) || !r.Contains(Pt(199, 99)) {
		t.Error("Contains() should include the top-left and last pixel")
	}
	if r.Contains(Pt(200, 50)) || r.Contains(Pt(-1, 0)) {
		t.Error("Contains() should exclude points outside the rectangle")
	}

	off := Rect{Origin: Pt(10, 10), Size: Sz(5, 7)}
	if got := off.Center(); got != Pt(12, 13) {
		t.Errorf("Center() = %v, want (12,13)", got)
	}
	if !(Rect{}).Empty() {
		t.Error("zero Rect should be empty")
	}
}
