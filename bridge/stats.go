// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"github.com/gogpu/ggview/frametiming"
	"github.com/gogpu/ggview/geometry"
)

// Stats is a snapshot of a bridge for diagnostics.
type Stats struct {
	ID             string            `json:"id"`
	State          string            `json:"state"`
	Size           geometry.Size     `json:"size"`
	Published      uint64            `json:"published"`
	DroppedFrames  uint64            `json:"dropped_frames"`
	LastVersion    uint32            `json:"last_version"`
	RenderedFrames uint64            `json:"rendered_frames"`
	Timing         frametiming.Stats `json:"timing"`
}

// Stats returns a snapshot. It waits for an in-flight frame to finish.
func (b *Bridge) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.stats
	s.ID = b.id.String()
	s.State = b.State().String()
	s.Size = b.size
	s.Timing = b.tracker.Stats()
	if w := b.worker.Load(); w != nil {
		s.RenderedFrames = w.Frames()
	}
	return s
}
