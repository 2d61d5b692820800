// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command spinsquare runs the spinning-square view against the headless
// compositor.
//
// It renders until the frame budget is spent, the quit key arrives or the
// process is interrupted, then optionally writes the last frame as PNG.
//
//	spinsquare --frames 120 --output square.png
//	spinsquare --config spinsquare.yaml --listen 127.0.0.1:8080 --drag
package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ggview"
	"github.com/gogpu/ggview/bridge"
	"github.com/gogpu/ggview/compositor"
	"github.com/gogpu/ggview/compositor/headless"
	"github.com/gogpu/ggview/frametiming"
	"github.com/gogpu/ggview/geometry"
	"github.com/gogpu/ggview/input"
	"github.com/gogpu/ggview/internal/config"
	"github.com/gogpu/ggview/internal/debugserver"
	"github.com/gogpu/ggview/render"
	"github.com/gogpu/ggview/spinner"
	"github.com/gogpu/ggview/worker"
)

type options struct {
	Config   string        `long:"config" description:"YAML configuration file"`
	Width    int           `long:"width" description:"view width in pixels"`
	Height   int           `long:"height" description:"view height in pixels"`
	Interval time.Duration `long:"interval" description:"vsync interval, e.g. 16ms"`
	Frames   uint64        `long:"frames" description:"stop after this many frames (0 runs until quit)"`
	Label    string        `long:"label" description:"label text"`
	NoLabel  bool          `long:"no-label" description:"draw no label"`
	Font     string        `long:"font" description:"TrueType or OpenType font file for the label"`
	Output   string        `long:"output" description:"write the last frame to this PNG file"`
	Listen   string        `long:"listen" description:"serve the inspector on this address"`
	LogLevel string        `long:"log-level" description:"debug, info, warn or error"`
	Drag     bool          `long:"drag" description:"script a drag across the view"`

	NullDevice bool `long:"null-device" description:"hand the renderer a null GPU device (CPU only)"`
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintln(os.Stderr, "spinsquare:", err)
		stop()
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	_, err := parser.ParseArgs(args)
	return opts, err
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.Width != 0 {
		cfg.View.Width = opts.Width
	}
	if opts.Height != 0 {
		cfg.View.Height = opts.Height
	}
	if opts.Interval != 0 {
		cfg.View.Interval = opts.Interval
	}
	if opts.Frames != 0 {
		cfg.View.Frames = opts.Frames
	}
	switch {
	case opts.NoLabel:
		empty := ""
		cfg.Spinner.Label = &empty
	case opts.Label != "":
		label := opts.Label
		cfg.Spinner.Label = &label
	}
	if opts.Font != "" {
		cfg.Spinner.Font = opts.Font
	}
	if opts.Listen != "" {
		cfg.Debug.Listen = opts.Listen
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func spinnerOptions(cfg *config.Config) ([]spinner.Option, error) {
	opts := []spinner.Option{spinner.WithStep(cfg.Spinner.Step)}
	if cfg.Spinner.Label != nil {
		opts = append(opts, spinner.WithLabel(*cfg.Spinner.Label))
	}

	if cfg.Spinner.Font != "" {
		src, err := spinner.LoadFontFile(cfg.Spinner.Font)
		if err != nil {
			return nil, err
		}
		opts = append(opts, spinner.WithFace(src.Face(cfg.Spinner.FontSize)))
	} else if cfg.Spinner.FontSize != spinner.DefaultFontSize {
		src, err := spinner.DefaultFont()
		if err != nil {
			return nil, err
		}
		opts = append(opts, spinner.WithFace(src.Face(cfg.Spinner.FontSize)))
	}
	return opts, nil
}

func run(ctx context.Context, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ggview.SetLogger(logger)
	defer ggview.SetLogger(nil)

	spinnerOpts, err := spinnerOptions(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	size := geometry.Sz(cfg.View.Width, cfg.View.Height)
	clock := frametiming.NewMonotonicClock()
	hc := headless.New(size,
		headless.WithInterval(cfg.View.Interval),
		headless.WithClock(clock),
		headless.WithMaxFrames(cfg.View.Frames),
	)
	defer hc.Close()

	b, err := bridge.New(bridge.Host{
		Scene: hc,
		View:  hc,
		Input: hc,
		Clock: clock,
		Quit:  cancel,
	}, func(size geometry.Size) (worker.App, error) {
		return spinner.New(size, spinnerOpts...)
	}, bridge.WithQuitHIDUsage(cfg.Input.QuitKey),
		bridge.WithWorkerOptions(workerOptions(opts)...),
	)
	if err != nil {
		return err
	}
	defer b.Close()
	logger.Info("spinsquare: starting", "view", b.ID().String(), "size", size, "interval", cfg.View.Interval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		err := hc.Run(gctx, b)
		if errors.Is(err, bridge.ErrClosed) {
			return nil
		}
		return err
	})
	if cfg.Debug.Listen != "" {
		srv := debugserver.New(b, hc, logger)
		g.Go(func() error {
			return srv.ListenAndServe(gctx, cfg.Debug.Listen)
		})
	}
	if opts.Drag {
		g.Go(func() error {
			return drag(gctx, hc, size, cfg.View.Interval)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := b.Close(); err != nil {
		return err
	}

	stats := b.Stats()
	logger.Info("spinsquare: done", "published", stats.Published, "rendered", stats.RenderedFrames)

	if opts.Output != "" {
		return writePNG(hc, opts.Output)
	}
	return nil
}

func workerOptions(opts options) []worker.Option {
	if !opts.NullDevice {
		return nil
	}
	return []worker.Option{
		worker.WithRenderOptions(render.WithDeviceProvider(render.NullDeviceHandle{})),
	}
}

// dragSteps is the number of pointer moves in the scripted drag.
const dragSteps = 30

// drag sweeps a pointer from the left edge to the right edge across the
// middle of the view, one move per vsync interval.
func drag(ctx context.Context, hc *headless.Compositor, size geometry.Size, interval time.Duration) error {
	y := float32(size.Height) / 2
	step := float32(size.Width) / dragSteps

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := hc.InjectPointer(1, input.PhaseDown, 0, y); err != nil {
		return ignoreClosed(err)
	}
	for i := 1; i <= dragSteps; i++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if err := hc.InjectPointer(1, input.PhaseMove, step*float32(i), y); err != nil {
			return ignoreClosed(err)
		}
	}
	return ignoreClosed(hc.InjectPointer(1, input.PhaseUp, float32(size.Width), y))
}

func ignoreClosed(err error) error {
	if errors.Is(err, compositor.ErrClosed) {
		return nil
	}
	return err
}

func writePNG(hc *headless.Compositor, path string) error {
	img := hc.Snapshot()
	if img == nil {
		return errors.New("no frame was published")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
