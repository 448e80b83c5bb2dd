package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosmit147/zenith2d"
	"github.com/kosmit147/zenith2d/config"
	"github.com/kosmit147/zenith2d/surface"
)

// testApp records the order of lifecycle calls.
type testApp struct {
	calls     []string
	updateErr error
	drawErr   error
	quitAt    uint64
	draw      func(ctx *Context) error
}

func (a *testApp) Init(*Context) error {
	a.calls = append(a.calls, "init")
	return nil
}

func (a *testApp) Update(ctx *Context, _ time.Duration) error {
	a.calls = append(a.calls, "update")
	if a.quitAt != 0 && ctx.Frame() >= a.quitAt {
		return ErrQuit
	}
	return a.updateErr
}

func (a *testApp) Draw(ctx *Context) error {
	a.calls = append(a.calls, "draw")
	if a.draw != nil {
		return a.draw(ctx)
	}
	return a.drawErr
}

func (a *testApp) Shutdown(*Context) {
	a.calls = append(a.calls, "shutdown")
}

func newTestEngine(t *testing.T, app Application) (*Engine, *surface.ImageSurface) {
	t.Helper()
	s := surface.NewImageSurface(64, 48)
	cfg := config.Default()
	cfg.Log.Level = "off"
	e, err := New(cfg, app, s)
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e, s
}

func TestNewRejectsInvalid(t *testing.T) {
	s := surface.NewImageSurface(4, 4)

	_, err := New(config.Default(), nil, s)
	assert.Error(t, err)

	cfg := config.Default()
	cfg.TargetFPS = 0
	_, err = New(cfg, &testApp{}, s)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNewAppliesRendererConfig(t *testing.T) {
	s := surface.NewImageSurface(4, 4)
	cfg := config.Default()
	cfg.Log.Level = "off"
	cfg.Renderer.Algorithm = "hardware"
	cfg.Renderer.Fill = "flood"

	e, err := New(cfg, &testApp{}, s)
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, zenith.Hardware, e.Context().Renderer.RenderingAlgorithm())
	assert.Equal(t, zenith.FloodFill, e.Context().Renderer.FillAlgorithm())
}

func TestFrameOrder(t *testing.T) {
	app := &testApp{}
	e, s := newTestEngine(t, app)

	var order []string
	e.Context().Events.SubscribeAll(func(ev Event) {
		order = append(order, "event:"+ev.Kind().String())
	})
	e.Context().Updates.Add(UpdateFunc(func(time.Duration) error {
		order = append(order, "entity")
		return nil
	}))
	app.draw = func(*Context) error {
		order = append(order, "draw")
		return nil
	}

	require.NoError(t, e.Init())
	require.NoError(t, e.Frame([]Event{KeyPressed{Key: "A"}}, time.Millisecond))
	order = append(order, "app-update")
	require.NoError(t, e.Render(s))

	assert.Equal(t, []string{"event:KeyPressed", "entity", "app-update", "draw"}, order)
	assert.Equal(t, uint64(1), e.Context().Frame())
}

func TestWindowClosedStopsLoop(t *testing.T) {
	e, _ := newTestEngine(t, &testApp{})
	require.NoError(t, e.Init())

	require.NoError(t, e.Frame(nil, 0))
	assert.True(t, e.Running())

	require.NoError(t, e.Frame([]Event{WindowClosed{}}, 0))
	assert.False(t, e.Running())
}

func TestErrQuitIsNotAnError(t *testing.T) {
	app := &testApp{quitAt: 3}
	e, s := newTestEngine(t, app)

	err := e.Run(&HeadlessDriver{Backend: s})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), e.Context().Frame())
	assert.Equal(t, "init", app.calls[0])
	assert.Equal(t, "shutdown", app.calls[len(app.calls)-1])
}

func TestUpdateErrorStopsRun(t *testing.T) {
	boom := errors.New("boom")
	app := &testApp{updateErr: boom}
	e, s := newTestEngine(t, app)

	err := e.Run(&HeadlessDriver{Backend: s, Frames: 10})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(1), e.Context().Frame())
}

func TestHeadlessDriverFrames(t *testing.T) {
	app := &testApp{}
	e, s := newTestEngine(t, app)

	var got []Event
	e.Context().Events.Subscribe(KindMouseMoved, func(ev Event) { got = append(got, ev) })

	err := e.Run(&HeadlessDriver{
		Backend: s,
		Frames:  4,
		Events: func(i int) []Event {
			return []Event{MouseMoved{X: i, Y: i}, FocusGained{}}
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), e.Context().Frame())
	assert.Len(t, got, 4)
	assert.Equal(t, MouseMoved{X: 3, Y: 3}, got[3])

	// Run closed the engine.
	assert.ErrorIs(t, e.Frame(nil, 0), ErrClosed)
	assert.ErrorIs(t, e.Render(s), ErrClosed)
}

func TestRenderClearsAndDraws(t *testing.T) {
	app := &testApp{}
	e, s := newTestEngine(t, app)
	e.Context().Config.Renderer.ClearColor = "white"
	app.draw = func(ctx *Context) error {
		return ctx.Renderer.FillRect(zenith.R(10, 10, 10, 10), zenith.Red)
	}

	require.NoError(t, e.Init())
	require.NoError(t, e.Render(s))

	assert.Equal(t, zenith.White, s.Pixel(0, 0))
	assert.Equal(t, zenith.Red, s.Pixel(15, 15))
}

func TestRenderPropagatesDrawError(t *testing.T) {
	app := &testApp{drawErr: zenith.ErrUpload}
	e, s := newTestEngine(t, app)
	require.NoError(t, e.Init())

	assert.ErrorIs(t, e.Render(s), zenith.ErrUpload)
}

func TestApplyConfig(t *testing.T) {
	e, _ := newTestEngine(t, &testApp{})

	cfg := config.Default()
	cfg.Renderer.Algorithm = "hardware"
	cfg.Renderer.Fill = "flood"
	e.ApplyConfig(cfg)

	assert.Equal(t, zenith.Hardware, e.Context().Renderer.RenderingAlgorithm())
	assert.Equal(t, zenith.FloodFill, e.Context().Renderer.FillAlgorithm())
	assert.Equal(t, "hardware", e.Context().Config.Renderer.Algorithm)
}

func TestWatchConfigAppliesOnFrame(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"off\"\n"), 0o600))

	e, _ := newTestEngine(t, &testApp{})
	require.NoError(t, e.Init())
	e.WatchConfig(path)

	content := []byte("[log]\nlevel = \"off\"\n[renderer]\nfill = \"flood\"\n")
	// The watcher starts asynchronously, so the file is rewritten until a
	// reload lands. Writes are spaced well beyond the reload settle delay.
	deadline := time.Now().Add(5 * time.Second)
	var written time.Time
	for e.Context().Renderer.FillAlgorithm() != zenith.FloodFill {
		if time.Now().After(deadline) {
			t.Fatal("reload not applied within 5s")
		}
		if time.Since(written) > 500*time.Millisecond {
			require.NoError(t, os.WriteFile(path, content, 0o600))
			written = time.Now()
		}
		time.Sleep(20 * time.Millisecond)
		require.NoError(t, e.Frame(nil, 0))
	}
}

func TestCloseIdempotent(t *testing.T) {
	app := &testApp{}
	e, _ := newTestEngine(t, app)
	require.NoError(t, e.Init())

	e.Close()
	e.Close()
	assert.Equal(t, []string{"init", "shutdown"}, app.calls)
	assert.ErrorIs(t, e.Init(), ErrClosed)
	assert.False(t, e.Running())
}
