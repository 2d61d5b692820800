// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "log/slog"

// Option configures a SoftwareRenderer during creation.
type Option func(*options)

type options struct {
	device DeviceHandle
	logger *slog.Logger
}

// WithDeviceProvider shares the host GPU device with gg's accelerator, if
// one is registered. Without an accelerator the handle is ignored and
// rendering stays on the CPU.
func WithDeviceProvider(h DeviceHandle) Option {
	return func(o *options) {
		o.device = h
	}
}

// WithLogger sets the logger used for renderer diagnostics.
// Defaults to ggview.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
