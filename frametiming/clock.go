// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frametiming

import (
	"sync"
	"time"
)

// Clock provides the current monotonic time in ticks.
type Clock interface {
	Now() int64
}

// MonotonicClock reports nanoseconds elapsed since it was created.
// It reads Go's monotonic clock, so wall clock adjustments do not affect it.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a clock whose origin is the current instant.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now returns nanoseconds since the clock's origin.
func (c *MonotonicClock) Now() int64 {
	return int64(time.Since(c.origin))
}

// ManualClock is a Clock that only moves when told to.
// All methods are safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now int64
}

// NewManualClock returns a ManualClock reading start.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set sets the clock to an exact tick count.
func (c *ManualClock) Set(now int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by d ticks.
func (c *ManualClock) Advance(d int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}
