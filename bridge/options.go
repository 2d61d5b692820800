// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package bridge

import (
	"log/slog"

	"github.com/gogpu/ggview/input"
	"github.com/gogpu/ggview/worker"
)

// Option configures a Bridge.
type Option func(*options)

type options struct {
	quitUsage  uint32
	logger     *slog.Logger
	workerOpts []worker.Option
}

func defaultOptions() options {
	return options{
		quitUsage: input.HIDUsageEscape,
	}
}

// WithQuitHIDUsage sets the HID usage of the key that closes the view.
// Defaults to input.HIDUsageEscape.
func WithQuitHIDUsage(usage uint32) Option {
	return func(o *options) {
		o.quitUsage = usage
	}
}

// WithLogger sets the bridge logger. Defaults to ggview.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWorkerOptions passes options to the render worker.
func WithWorkerOptions(opts ...worker.Option) Option {
	return func(o *options) {
		o.workerOpts = append(o.workerOpts, opts...)
	}
}
