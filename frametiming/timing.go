// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frametiming

import "fmt"

// Timing describes the schedule of the upcoming frame.
type Timing struct {
	// PresentationTime is when the frame should become visible.
	PresentationTime int64

	// PresentationInterval is the nominal period between frames.
	// Zero means the compositor has not established a cadence yet.
	PresentationInterval int64

	// PublishDeadline is the latest time the frame content can be published
	// and still make PresentationTime.
	PublishDeadline int64

	// BaseTime is the time the frame is based on.
	BaseTime int64
}

// String implements fmt.Stringer.
func (t Timing) String() string {
	return fmt.Sprintf("base=%d deadline=%d present=%d interval=%d",
		t.BaseTime, t.PublishDeadline, t.PresentationTime, t.PresentationInterval)
}
