// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frametiming

// Tracker corrects compositor timing for one view.
//
// Tracker is NOT safe for concurrent use. It is owned by a single view
// bridge and updated once per invalidation.
type Tracker struct {
	frameCount            uint64
	last                  Timing
	presentationTimeDelta int64
}

// NewTracker returns a Tracker with no frame history.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Update corrects in against now and the previous corrected record, stores
// the result and returns it.
//
// The corrected record satisfies:
//   - BaseTime <= now, unless the previous BaseTime was already later
//   - PublishDeadline >= BaseTime
//   - BaseTime and PresentationTime never decrease across calls
//
// When PresentationInterval is positive and the frame is based at least one
// interval in the past, the schedule is moved forward by whole intervals so
// BaseTime lands on the latest boundary not after now. PublishDeadline and
// PresentationTime move by the same amount. A zero interval leaves the
// schedule as reported.
func (t *Tracker) Update(in Timing, now int64) Timing {
	oldBase := t.last.BaseTime
	oldPresentation := t.last.PresentationTime

	ft := in

	// A frame cannot be based in the future.
	if ft.BaseTime > now {
		ft.BaseTime = now
	}
	if ft.PublishDeadline < ft.BaseTime {
		ft.PublishDeadline = ft.BaseTime
	}

	// Step past skipped frames.
	lag := now - ft.BaseTime
	if ft.PresentationInterval > 0 && lag >= ft.PresentationInterval {
		offset := lag % ft.PresentationInterval
		adjustment := now - offset - ft.BaseTime
		ft.BaseTime = now - offset
		ft.PublishDeadline += adjustment
		ft.PresentationTime += adjustment
	}

	t.frameCount++ // wraps

	ft.BaseTime = max(ft.BaseTime, oldBase)
	ft.PresentationTime = max(ft.PresentationTime, oldPresentation)
	if ft.PublishDeadline < ft.BaseTime {
		ft.PublishDeadline = ft.BaseTime
	}

	t.presentationTimeDelta = ft.BaseTime - oldBase
	t.last = ft
	return ft
}

// FrameCount returns the number of updates, modulo 2^64.
func (t *Tracker) FrameCount() uint64 {
	return t.frameCount
}

// Last returns the most recent corrected record.
func (t *Tracker) Last() Timing {
	return t.last
}

// PresentationTimeDelta returns how far BaseTime advanced in the last update.
func (t *Tracker) PresentationTimeDelta() int64 {
	return t.presentationTimeDelta
}

// Stats is a snapshot of tracker state for diagnostics.
type Stats struct {
	FrameCount            uint64 `json:"frame_count"`
	BaseTime              int64  `json:"base_time"`
	PresentationTime      int64  `json:"presentation_time"`
	PublishDeadline       int64  `json:"publish_deadline"`
	PresentationInterval  int64  `json:"presentation_interval"`
	PresentationTimeDelta int64  `json:"presentation_time_delta"`
}

// Stats returns a snapshot of the tracker.
func (t *Tracker) Stats() Stats {
	return Stats{
		FrameCount:            t.frameCount,
		BaseTime:              t.last.BaseTime,
		PresentationTime:      t.last.PresentationTime,
		PublishDeadline:       t.last.PublishDeadline,
		PresentationInterval:  t.last.PresentationInterval,
		PresentationTimeDelta: t.presentationTimeDelta,
	}
}
