// Package config holds the engine configuration: window, frame rate,
// renderer modes and logging.
//
// A Config starts from Default and is overlaid by a TOML or YAML file with
// Load. Watch reloads the file whenever it changes on disk.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kosmit147/zenith2d"
)

// ErrInvalid is wrapped by every error Validate returns.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the engine configuration.
type Config struct {
	Window    Window   `toml:"window" yaml:"window"`
	TargetFPS int      `toml:"target_fps" yaml:"target_fps"`
	Renderer  Renderer `toml:"renderer" yaml:"renderer"`
	Log       Log      `toml:"log" yaml:"log"`
}

// Window describes the main window.
type Window struct {
	Title     string `toml:"title" yaml:"title"`
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Resizable bool   `toml:"resizable" yaml:"resizable"`
	VSync     bool   `toml:"vsync" yaml:"vsync"`
}

// Renderer selects the primitive renderer modes.
type Renderer struct {
	// Algorithm is "software" or "hardware".
	Algorithm string `toml:"algorithm" yaml:"algorithm"`

	// Fill is "boundary" or "flood".
	Fill string `toml:"fill" yaml:"fill"`

	// ParallelClear is the number of workers clearing the scratch pixmap;
	// 0 and 1 clear on the calling goroutine.
	ParallelClear int `toml:"parallel_clear" yaml:"parallel_clear"`

	// ClearColor is a hex color or SVG color name the frame is cleared to.
	ClearColor string `toml:"clear_color" yaml:"clear_color"`
}

// Log configures the engine logger.
type Log struct {
	// Level is "debug", "info", "warn", "error" or "off".
	Level string `toml:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "zenith",
			Width:     800,
			Height:    600,
			Resizable: true,
			VSync:     true,
		},
		TargetFPS: 60,
		Renderer: Renderer{
			Algorithm:  "software",
			Fill:       "boundary",
			ClearColor: "black",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.TargetFPS <= 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.TargetFPS)
	case c.Renderer.ParallelClear < 0:
		return fmt.Errorf("%w: parallel_clear %d", ErrInvalid, c.Renderer.ParallelClear)
	}
	if _, err := c.RenderingAlgorithm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.FillAlgorithm(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.ClearColor(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// RenderingAlgorithm parses Renderer.Algorithm. An empty value means
// Software.
func (c Config) RenderingAlgorithm() (zenith.RenderingAlgorithm, error) {
	if c.Renderer.Algorithm == "" {
		return zenith.Software, nil
	}
	return zenith.ParseRenderingAlgorithm(c.Renderer.Algorithm)
}

// FillAlgorithm parses Renderer.Fill. An empty value means BoundaryFill.
func (c Config) FillAlgorithm() (zenith.FillAlgorithm, error) {
	if c.Renderer.Fill == "" {
		return zenith.BoundaryFill, nil
	}
	return zenith.ParseFillAlgorithm(c.Renderer.Fill)
}

// ClearColor parses Renderer.ClearColor. An empty value means Black.
func (c Config) ClearColor() (zenith.Color, error) {
	if c.Renderer.ClearColor == "" {
		return zenith.Black, nil
	}
	return zenith.ParseColor(c.Renderer.ClearColor)
}

// RendererOptions returns the zenith options matching the renderer section.
// Unparsable values are skipped; call Validate first to catch them.
func (c Config) RendererOptions() []zenith.RendererOption {
	var opts []zenith.RendererOption
	if a, err := c.RenderingAlgorithm(); err == nil {
		opts = append(opts, zenith.WithRenderingAlgorithm(a))
	}
	if f, err := c.FillAlgorithm(); err == nil {
		opts = append(opts, zenith.WithFillAlgorithm(f))
	}
	if c.Renderer.ParallelClear > 1 {
		opts = append(opts, zenith.WithParallelClear(c.Renderer.ParallelClear))
	}
	return opts
}

// NewLogger builds a slog logger writing to w at the configured level and
// format. Level "off" returns a silent logger.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil || level == levelOff {
		return zenith.NopLogger()
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// levelOff is above every level slog emits.
const levelOff = slog.Level(100)

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "off", "none":
		return levelOff, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
