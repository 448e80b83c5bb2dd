// Package engine runs the per-frame loop around a zenith Renderer.
//
// Each frame runs in a fixed order on one goroutine: poll input events,
// dispatch them, update registered entities, update the application, then
// draw. A Driver owns the loop: the Ebiten driver in
// integration/ebitencanvas opens a window, HeadlessDriver renders a fixed
// number of frames into any Backend.
//
// All engine state lives in a Context owned by the Engine and handed to the
// Application; there are no package-level singletons.
package engine

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	"github.com/kosmit147/zenith2d"
	"github.com/kosmit147/zenith2d/config"
)

// ErrQuit may be returned by Application.Update to stop the loop cleanly.
var ErrQuit = errors.New("engine: quit")

// ErrClosed is returned when running an Engine that was closed.
var ErrClosed = errors.New("engine: engine is closed")

// Context is the state shared by the engine and the application.
type Context struct {
	Logger   *slog.Logger
	Config   config.Config
	Renderer *zenith.Renderer
	Events   *Dispatcher
	Updates  *Updater

	frame uint64
	quit  bool
}

// Quit stops the loop after the current frame.
func (c *Context) Quit() {
	c.quit = true
}

// Frame returns the number of frames started so far.
func (c *Context) Frame() uint64 {
	return c.frame
}

// Application is the game driven by the engine.
type Application interface {
	// Init runs once before the first frame.
	Init(ctx *Context) error

	// Update advances the game by dt. Returning ErrQuit stops the loop.
	Update(ctx *Context, dt time.Duration) error

	// Draw renders the current state with ctx.Renderer.
	Draw(ctx *Context) error

	// Shutdown runs once after the last frame.
	Shutdown(ctx *Context)
}

// Driver owns the frame loop and calls Engine.Frame and Engine.Render
// until Engine.Running reports false.
type Driver interface {
	Run(e *Engine) error
}

// Clearer is implemented by backends that can be cleared to a color at the
// start of every frame.
type Clearer interface {
	Clear(c color.Color)
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Engine ties an Application to a Renderer and runs its frames.
type Engine struct {
	ctx *Context
	app Application

	reloads     chan config.Config
	stopWatch   context.CancelFunc
	initialized bool
	closed      bool
}

// New builds the engine context from cfg and creates a renderer drawing
// onto backend. The configuration must be valid.
func New(cfg config.Config, app Application, backend zenith.Backend, opts ...Option) (*Engine, error) {
	if app == nil {
		return nil, errors.New("engine: nil application")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = cfg.NewLogger(os.Stderr)
	}

	rendererOpts := append(cfg.RendererOptions(), zenith.WithLogger(logger))
	ctx := &Context{
		Logger:   logger,
		Config:   cfg,
		Renderer: zenith.NewRenderer(backend, rendererOpts...),
		Events:   NewDispatcher(),
		Updates:  NewUpdater(),
	}
	return &Engine{
		ctx:     ctx,
		app:     app,
		reloads: make(chan config.Config, 1),
	}, nil
}

// Context returns the engine context.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Running reports whether the loop should keep going.
func (e *Engine) Running() bool {
	return !e.closed && !e.ctx.quit
}

// Quit stops the loop after the current frame.
func (e *Engine) Quit() {
	e.ctx.Quit()
}

// Init runs Application.Init once. Drivers call it before the first
// frame; Run does it for them.
func (e *Engine) Init() error {
	if e.closed {
		return ErrClosed
	}
	if e.initialized {
		return nil
	}
	if err := e.app.Init(e.ctx); err != nil {
		return fmt.Errorf("engine: init: %w", err)
	}
	e.initialized = true
	e.ctx.Logger.Info("engine: initialized",
		"width", e.ctx.Config.Window.Width,
		"height", e.ctx.Config.Window.Height)
	return nil
}

// Frame runs the update half of one frame: apply a pending configuration
// reload, dispatch events, update entities, update the application.
//
// A WindowClosed event or an ErrQuit from the application stops the loop
// after this frame and is not an error.
func (e *Engine) Frame(events []Event, dt time.Duration) error {
	if e.closed {
		return ErrClosed
	}
	e.ctx.frame++
	e.applyReload()

	for _, ev := range events {
		if ev.Kind() == KindWindowClosed {
			e.ctx.Quit()
		}
		e.ctx.Events.Dispatch(ev)
	}

	if err := e.ctx.Updates.Update(dt); err != nil {
		return fmt.Errorf("engine: update entities: %w", err)
	}
	if err := e.app.Update(e.ctx, dt); err != nil {
		if errors.Is(err, ErrQuit) {
			e.ctx.Quit()
			return nil
		}
		return fmt.Errorf("engine: update: %w", err)
	}
	return nil
}

// Render draws one frame onto backend: it points the renderer at backend,
// clears it to the configured color when it is a Clearer, and calls
// Application.Draw.
func (e *Engine) Render(backend zenith.Backend) error {
	if e.closed {
		return ErrClosed
	}
	e.ctx.Renderer.SetBackend(backend)
	if c, ok := backend.(Clearer); ok {
		bg, err := e.ctx.Config.ClearColor()
		if err != nil {
			bg = zenith.Black
		}
		c.Clear(bg)
	}
	if err := e.app.Draw(e.ctx); err != nil {
		return fmt.Errorf("engine: draw: %w", err)
	}
	return nil
}

// Run initializes the application, hands the loop to driver, and shuts
// everything down when the driver returns.
func (e *Engine) Run(driver Driver) error {
	if err := e.Init(); err != nil {
		return err
	}
	err := driver.Run(e)
	e.Close()
	return err
}

// Close shuts the application down, stops the configuration watcher and
// releases the renderer. It is idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	if e.initialized {
		e.app.Shutdown(e.ctx)
	}
	if e.stopWatch != nil {
		e.stopWatch()
	}
	e.ctx.Renderer.Close()
	e.closed = true
	e.ctx.Logger.Info("engine: closed", "frames", e.ctx.frame)
}

// WatchConfig reloads the configuration file at path in the background.
// Every valid reload is applied at the start of the next frame: the
// renderer modes switch and Context.Config is replaced. Window settings
// only take effect on restart.
func (e *Engine) WatchConfig(path string) {
	if e.stopWatch != nil {
		e.stopWatch()
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.stopWatch = cancel
	go func() {
		err := config.Watch(ctx, path, e.ctx.Logger, func(c config.Config) {
			// Keep only the newest pending reload.
			select {
			case <-e.reloads:
			default:
			}
			select {
			case e.reloads <- c:
			default:
			}
		})
		if err != nil {
			e.ctx.Logger.Warn("engine: config watch stopped", "path", path, "error", err)
		}
	}()
}

// applyReload installs a pending configuration, if any.
func (e *Engine) applyReload() {
	select {
	case cfg := <-e.reloads:
		e.ApplyConfig(cfg)
	default:
	}
}

// ApplyConfig replaces Context.Config and switches the renderer modes to
// match. It must be called from the loop goroutine.
func (e *Engine) ApplyConfig(cfg config.Config) {
	e.ctx.Config = cfg
	if a, err := cfg.RenderingAlgorithm(); err == nil {
		e.ctx.Renderer.SetRenderingAlgorithm(a)
	}
	if f, err := cfg.FillAlgorithm(); err == nil {
		e.ctx.Renderer.SetFillAlgorithm(f)
	}
	e.ctx.Logger.Info("engine: configuration applied",
		"algorithm", e.ctx.Renderer.RenderingAlgorithm().String(),
		"fill", e.ctx.Renderer.FillAlgorithm().String())
}
