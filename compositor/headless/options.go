// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"log/slog"
	"time"

	"github.com/gogpu/ggview/frametiming"
)

// DefaultInterval is a 60 Hz vsync period.
const DefaultInterval = time.Second / 60

// Option configures a Compositor.
type Option func(*options)

type options struct {
	interval  time.Duration
	clock     frametiming.Clock
	maxFrames uint64
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		interval: DefaultInterval,
	}
}

// WithInterval sets the vsync period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithClock sets the clock frame timing is read from. Share it with the
// view so both sides agree on time. Defaults to a monotonic clock.
func WithClock(c frametiming.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithMaxFrames makes Run return after n published frames. Zero means no
// limit.
func WithMaxFrames(n uint64) Option {
	return func(o *options) {
		o.maxFrames = n
	}
}

// WithLogger sets the compositor logger. Defaults to ggview.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
