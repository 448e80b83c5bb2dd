// Copyright 2026 The Zenith2D Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/kosmit147/zenith2d/engine"
)

// mouseButtons maps the polled Ebiten buttons to engine buttons.
var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	engine engine.MouseButton
}{
	{ebiten.MouseButtonLeft, engine.MouseLeft},
	{ebiten.MouseButtonRight, engine.MouseRight},
	{ebiten.MouseButtonMiddle, engine.MouseMiddle},
}

// Driver runs an engine inside an Ebiten window. It implements both
// engine.Driver and ebiten.Game.
type Driver struct {
	canvas *Canvas
	engine *engine.Engine

	pending []engine.Event
	keys    []ebiten.Key
	runes   []rune

	focused          bool
	cursorX, cursorY int
	width, height    int
}

// NewDriver returns a driver that renders every frame through canvas.
func NewDriver(canvas *Canvas) *Driver {
	return &Driver{canvas: canvas, focused: true}
}

// Run implements engine.Driver. It configures the window from the engine
// configuration and blocks in ebiten.RunGame until the engine stops or the
// window is closed.
func (d *Driver) Run(e *engine.Engine) error {
	d.engine = e
	cfg := e.Context().Config

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetTPS(cfg.TargetFPS)
	// Closing becomes a WindowClosed event instead of an immediate exit.
	ebiten.SetWindowClosingHandled(true)

	e.Context().Logger.Info("ebitencanvas: window opening",
		"title", cfg.Window.Title,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height)

	err := ebiten.RunGame(d)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return d.canvas.Close()
}

// Update implements ebiten.Game. It runs the update half of one engine
// frame with the input polled since the previous tick.
func (d *Driver) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	if err := d.engine.Frame(d.poll(), time.Second/time.Duration(tps)); err != nil {
		return err
	}
	if !d.engine.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game. Draw errors cannot stop Ebiten, so they are
// logged and the frame is kept as drawn so far.
func (d *Driver) Draw(screen *ebiten.Image) {
	d.canvas.SetTarget(screen)
	if err := d.engine.Render(d.canvas); err != nil {
		d.engine.Context().Logger.Warn("ebitencanvas: frame draw failed", "error", err)
	}
}

// Layout implements ebiten.Game. The screen always matches the window in
// pixels; a size change is reported as a WindowResized event on the next
// tick.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != d.width || outsideHeight != d.height {
		if d.width != 0 || d.height != 0 {
			d.pending = append(d.pending, engine.WindowResized{Width: outsideWidth, Height: outsideHeight})
		}
		d.width, d.height = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

// poll collects the input events of this tick.
func (d *Driver) poll() []engine.Event {
	events := d.pending
	d.pending = nil

	if ebiten.IsWindowBeingClosed() {
		events = append(events, engine.WindowClosed{})
	}
	if f := ebiten.IsFocused(); f != d.focused {
		d.focused = f
		if f {
			events = append(events, engine.FocusGained{})
		} else {
			events = append(events, engine.FocusLost{})
		}
	}

	d.runes = ebiten.AppendInputChars(d.runes[:0])
	for _, r := range d.runes {
		events = append(events, engine.TextEntered{Rune: r})
	}

	d.keys = inpututil.AppendJustPressedKeys(d.keys[:0])
	for _, k := range d.keys {
		events = append(events, engine.KeyPressed{Key: keyName(k)})
	}
	d.keys = inpututil.AppendJustReleasedKeys(d.keys[:0])
	for _, k := range d.keys {
		events = append(events, engine.KeyReleased{Key: keyName(k)})
	}

	x, y := ebiten.CursorPosition()
	if x != d.cursorX || y != d.cursorY {
		d.cursorX, d.cursorY = x, y
		events = append(events, engine.MouseMoved{X: x, Y: y})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			events = append(events, engine.MouseButtonPressed{Button: b.engine, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			events = append(events, engine.MouseButtonReleased{Button: b.engine, X: x, Y: y})
		}
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		events = append(events, engine.MouseWheelScrolled{DX: dx, DY: dy})
	}
	return events
}

// keyName returns the engine name of an Ebiten key.
func keyName(k ebiten.Key) engine.Key {
	return engine.Key(k.String())
}

var (
	_ engine.Driver = (*Driver)(nil)
	_ ebiten.Game   = (*Driver)(nil)
)
