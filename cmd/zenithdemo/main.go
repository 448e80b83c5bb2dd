// Command zenithdemo demonstrates the zenith primitive renderer.
//
// By default it opens an Ebiten window. With -headless it renders a fixed
// number of frames offscreen and writes the last one to a PNG file.
//
// Keys in the window: H toggles software and hardware rendering, F toggles
// boundary and flood fill, Escape quits.
package main

import (
	"flag"
	"log"

	"github.com/kosmit147/zenith2d/config"
	"github.com/kosmit147/zenith2d/engine"
	"github.com/kosmit147/zenith2d/integration/ebitencanvas"
	"github.com/kosmit147/zenith2d/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "configuration file (.toml, .yaml)")
		headless   = flag.Bool("headless", false, "render offscreen instead of opening a window")
		output     = flag.String("output", "demo.png", "output file for -headless")
		frames     = flag.Int("frames", 60, "frames to render with -headless")
		width      = flag.Int("width", 0, "window width (overrides the configuration)")
		height     = flag.Int("height", 0, "window height (overrides the configuration)")
		watch      = flag.Bool("watch", false, "reload the configuration file when it changes")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	if *headless {
		if err := runHeadless(cfg, *frames, *output); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", *output, cfg.Window.Width, cfg.Window.Height)
		return
	}

	canvas, err := ebitencanvas.New(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	e, err := engine.New(cfg, newDemo(), canvas)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	if *watch && *configPath != "" {
		e.WatchConfig(*configPath)
	}
	if err := e.Run(ebitencanvas.NewDriver(canvas)); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

// runHeadless renders frames into an image surface and saves the result.
func runHeadless(cfg config.Config, frames int, output string) error {
	s := surface.NewImageSurface(cfg.Window.Width, cfg.Window.Height)
	defer s.Close()

	e, err := engine.New(cfg, newDemo(), s)
	if err != nil {
		return err
	}
	if err := e.Run(&engine.HeadlessDriver{Backend: s, Frames: max(frames, 1)}); err != nil {
		return err
	}
	return s.SavePNG(output)
}
