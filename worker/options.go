// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package worker

import (
	"log/slog"

	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/render"
)

// Option configures a Worker.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	newRenderer RendererFactory
	renderOpts  []render.Option
}

func defaultOptions() options {
	return options{}
}

// WithLogger sets the worker logger. Defaults to ggview.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRendererFactory replaces the default software renderer.
func WithRendererFactory(f RendererFactory) Option {
	return func(o *options) {
		o.newRenderer = f
	}
}

// WithRenderOptions passes options to the default software renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(o *options) {
		o.renderOpts = append(o.renderOpts, opts...)
	}
}

func (o *options) rendererFactory() RendererFactory {
	if o.newRenderer != nil {
		return o.newRenderer
	}
	renderOpts := o.renderOpts
	if o.logger != nil {
		renderOpts = append([]render.Option{render.WithLogger(o.logger)}, renderOpts...)
	}
	return func(size geometry.Size) (render.Renderer, error) {
		return render.NewSoftwareRenderer(size, renderOpts...)
	}
}
