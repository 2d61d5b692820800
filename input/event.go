// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"math"

	"github.com/gogpu/ggview/geometry"
)

// HIDUsageEscape is the USB HID keyboard usage of the Escape key.
const HIDUsageEscape uint32 = 0x29

// Phase is the stage of a pointer interaction.
type Phase uint8

// Pointer phases.
const (
	PhaseDown Phase = iota + 1
	PhaseMove
	PhaseUp
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// KeyboardEvent is a key press as delivered by the compositor.
type KeyboardEvent struct {
	HIDUsage uint32
}

// PointerEvent is a pointer sample as delivered by the compositor.
type PointerEvent struct {
	PointerID uint32
	Phase     Phase
	X, Y      float32
}

// MetricsEvent reports the view's pixel scale.
type MetricsEvent struct {
	ScaleX, ScaleY float32
}

// Kind tags an Event.
type Kind uint8

// Event kinds. The set is closed; unknown input maps to KindOther.
const (
	KindOther Kind = iota
	KindMetrics
	KindPointerDown
	KindPointerMove
	KindPointerUp
	KindKey
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindMetrics:
		return "metrics"
	case KindPointerDown:
		return "pointer-down"
	case KindPointerMove:
		return "pointer-move"
	case KindPointerUp:
		return "pointer-up"
	case KindKey:
		return "key"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Event is a classified input event. Only the fields of its Kind are set.
type Event struct {
	Kind Kind

	// Pointer kinds.
	PointerID int
	Point     geometry.Point

	// KindKey.
	HIDUsage uint32

	// KindMetrics.
	ScaleX, ScaleY float32
}

// Classify maps a raw wire event to an Event. Values and pointers of the
// wire types are accepted; everything else is KindOther.
func Classify(raw any) Event {
	switch ev := raw.(type) {
	case Event:
		return ev
	case KeyboardEvent:
		return Event{Kind: KindKey, HIDUsage: ev.HIDUsage}
	case *KeyboardEvent:
		if ev != nil {
			return Classify(*ev)
		}
	case PointerEvent:
		return classifyPointer(ev)
	case *PointerEvent:
		if ev != nil {
			return classifyPointer(*ev)
		}
	case MetricsEvent:
		return Event{Kind: KindMetrics, ScaleX: ev.ScaleX, ScaleY: ev.ScaleY}
	case *MetricsEvent:
		if ev != nil {
			return Classify(*ev)
		}
	}
	return Event{Kind: KindOther}
}

func classifyPointer(ev PointerEvent) Event {
	var kind Kind
	switch ev.Phase {
	case PhaseDown:
		kind = KindPointerDown
	case PhaseMove:
		kind = KindPointerMove
	case PhaseUp:
		kind = KindPointerUp
	default:
		return Event{Kind: KindOther}
	}
	return Event{
		Kind:      kind,
		PointerID: int(ev.PointerID),
		Point:     geometry.Pt(roundCoord(ev.X), roundCoord(ev.Y)),
	}
}

// roundCoord rounds a view coordinate to the nearest pixel.
func roundCoord(v float32) int {
	f := float64(v)
	if math.IsNaN(f) {
		return 0
	}
	return int(math.Round(max(min(f, math.MaxInt32), math.MinInt32)))
}
