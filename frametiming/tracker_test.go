// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frametiming

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestTrackerLagSnap(t *testing.T) {
	tests := []struct {
		name string
		in   Timing
		now  int64
		want Timing
	}{
		{
			name: "zero schedule",
			in:   Timing{PresentationInterval: 16},
			now:  50,
			want: Timing{BaseTime: 48, PublishDeadline: 48, PresentationTime: 48, PresentationInterval: 16},
		},
		{
			name: "deadline and presentation shift by the adjustment",
			in:   Timing{PresentationInterval: 16, PublishDeadline: 8, PresentationTime: 16},
			now:  50,
			want: Timing{BaseTime: 48, PublishDeadline: 56, PresentationTime: 64, PresentationInterval: 16},
		},
		{
			name: "exactly one interval behind",
			in:   Timing{BaseTime: 100, PublishDeadline: 108, PresentationTime: 116, PresentationInterval: 16},
			now:  116,
			want: Timing{BaseTime: 116, PublishDeadline: 124, PresentationTime: 132, PresentationInterval: 16},
		},
		{
			name: "less than one interval behind is left alone",
			in:   Timing{BaseTime: 100, PublishDeadline: 108, PresentationTime: 116, PresentationInterval: 16},
			now:  115,
			want: Timing{BaseTime: 100, PublishDeadline: 108, PresentationTime: 116, PresentationInterval: 16},
		},
		{
			name: "zero interval disables compensation",
			in:   Timing{BaseTime: 0, PublishDeadline: 4, PresentationTime: 8},
			now:  1000,
			want: Timing{BaseTime: 0, PublishDeadline: 4, PresentationTime: 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			got := tr.Update(tt.in, tt.now)
			if got != tt.want {
				t.Errorf("Update() = %v, want %v", got, tt.want)
			}
			if tr.Last() != got {
				t.Errorf("Last() = %v, want %v", tr.Last(), got)
			}
		})
	}
}

func TestTrackerLagSnapDelta(t *testing.T) {
	tr := NewTracker()
	tr.Update(Timing{PresentationInterval: 16}, 50)
	if got := tr.PresentationTimeDelta(); got != 48 {
		t.Errorf("PresentationTimeDelta() = %d, want 48", got)
	}
}

func TestTrackerFutureBaseClamp(t *testing.T) {
	tr := NewTracker()
	got := tr.Update(Timing{BaseTime: 130, PublishDeadline: 120, PresentationTime: 146}, 100)

	if got.BaseTime != 100 {
		t.Errorf("BaseTime = %d, want 100", got.BaseTime)
	}
	if got.PublishDeadline != 120 {
		t.Errorf("PublishDeadline = %d, want 120", got.PublishDeadline)
	}

	// The monotonic floor wins over the clamp when it is higher.
	got = tr.Update(Timing{BaseTime: 90}, 80)
	if got.BaseTime != 100 {
		t.Errorf("BaseTime after clamp below floor = %d, want 100", got.BaseTime)
	}
}

func TestTrackerDeadlineNeverPrecedesBase(t *testing.T) {
	tr := NewTracker()
	got := tr.Update(Timing{BaseTime: 40, PublishDeadline: 10}, 50)
	if got.PublishDeadline != 40 {
		t.Errorf("PublishDeadline = %d, want raised to 40", got.PublishDeadline)
	}

	// Regressing base: the floor lifts BaseTime above the reported deadline.
	tr = NewTracker()
	tr.Update(Timing{BaseTime: 100, PublishDeadline: 108}, 100)
	got = tr.Update(Timing{BaseTime: 20, PublishDeadline: 30}, 110)
	if got.BaseTime != 100 {
		t.Errorf("BaseTime = %d, want 100", got.BaseTime)
	}
	if got.PublishDeadline < got.BaseTime {
		t.Errorf("PublishDeadline = %d, want >= BaseTime %d", got.PublishDeadline, got.BaseTime)
	}
}

func TestTrackerMonotonicAgainstRegression(t *testing.T) {
	tr := NewTracker()
	first := tr.Update(Timing{BaseTime: 100, PublishDeadline: 108, PresentationTime: 116}, 100)
	second := tr.Update(Timing{BaseTime: 50, PublishDeadline: 55, PresentationTime: 60}, 120)

	if second.BaseTime < first.BaseTime {
		t.Errorf("BaseTime regressed: %d -> %d", first.BaseTime, second.BaseTime)
	}
	if second.PresentationTime < first.PresentationTime {
		t.Errorf("PresentationTime regressed: %d -> %d", first.PresentationTime, second.PresentationTime)
	}
	if tr.PresentationTimeDelta() != 0 {
		t.Errorf("PresentationTimeDelta() = %d, want 0", tr.PresentationTimeDelta())
	}
}

func TestTrackerFirstFrameNotDelayed(t *testing.T) {
	tr := NewTracker()
	got := tr.Update(Timing{BaseTime: 30, PublishDeadline: 35, PresentationTime: 40}, 40)
	if got.BaseTime != 30 || got.PresentationTime != 40 {
		t.Errorf("first Update() = %v, want base 30 presentation 40", got)
	}
	if tr.FrameCount() != 1 {
		t.Errorf("FrameCount() = %d, want 1", tr.FrameCount())
	}
}

func TestTrackerFrameCountWraps(t *testing.T) {
	tr := NewTracker()
	tr.frameCount = math.MaxUint64
	tr.Update(Timing{}, 0)
	if tr.FrameCount() != 0 {
		t.Errorf("FrameCount() = %d, want wrap to 0", tr.FrameCount())
	}
}

func TestTrackerRandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tr := NewTracker()

	var prev Timing
	now := int64(0)
	for i := range 2000 {
		// now mostly advances but sometimes jumps back to exercise the floor.
		now += rng.Int64N(40) - 5
		in := Timing{
			BaseTime:             now + rng.Int64N(200) - 150,
			PublishDeadline:      now + rng.Int64N(200) - 150,
			PresentationTime:     now + rng.Int64N(200) - 100,
			PresentationInterval: rng.Int64N(3) * 8,
		}

		got := tr.Update(in, now)

		if got.BaseTime < prev.BaseTime {
			t.Fatalf("step %d: BaseTime regressed %d -> %d", i, prev.BaseTime, got.BaseTime)
		}
		if got.PresentationTime < prev.PresentationTime {
			t.Fatalf("step %d: PresentationTime regressed %d -> %d", i, prev.PresentationTime, got.PresentationTime)
		}
		if got.PublishDeadline < got.BaseTime {
			t.Fatalf("step %d: PublishDeadline %d < BaseTime %d", i, got.PublishDeadline, got.BaseTime)
		}
		if got.BaseTime > now && got.BaseTime != prev.BaseTime {
			t.Fatalf("step %d: BaseTime %d in the future of now %d", i, got.BaseTime, now)
		}
		if in.PresentationInterval > 0 && got.BaseTime > prev.BaseTime && now-got.BaseTime >= in.PresentationInterval {
			t.Fatalf("step %d: lag %d not compensated (interval %d)", i, now-got.BaseTime, in.PresentationInterval)
		}
		prev = got
	}
}

func TestTrackerStats(t *testing.T) {
	tr := NewTracker()
	tr.Update(Timing{PresentationInterval: 16}, 50)

	s := tr.Stats()
	want := Stats{
		FrameCount:            1,
		BaseTime:              48,
		PresentationTime:      48,
		PublishDeadline:       48,
		PresentationInterval:  16,
		PresentationTimeDelta: 48,
	}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}
