// Copyright 2026 The Zenith2D Authors
// SPDX-License-Identifier: MIT

// Package ebitencanvas connects the zenith renderer and engine to Ebiten
// windows.
//
// Canvas is a zenith.Backend over an *ebiten.Image, normally the screen
// handed to Game.Draw. The data flow for filled shapes in Software mode is:
//
//	Renderer (fill) -> Pixmap (CPU) -> ebiten texture -> screen
//
// # Architecture
//
//   - Point batches become one-pixel quads drawn with DrawTriangles
//   - Line batches are stepped on the CPU with the same DDA plotter as
//     the other backends and drawn as point quads
//   - BlitPixmap uploads the pixmap to a texture that is created lazily,
//     recreated when the pixmap size changes, and drawn with DrawImage
//   - Hardware mode uses ebiten/v2/vector paths for native shapes
//
// Driver implements engine.Driver with ebiten.RunGame: it polls Ebiten
// input into engine events every tick and renders every frame.
//
// # Usage
//
//	canvas, err := ebitencanvas.New(cfg.Window.Width, cfg.Window.Height)
//	if err != nil {
//		log.Fatal(err)
//	}
//	e, err := engine.New(cfg, game, canvas)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := e.Run(ebitencanvas.NewDriver(canvas)); err != nil {
//		log.Fatal(err)
//	}
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Ebiten calls Update and Draw on
// one goroutine, which is the only place a Canvas should be used.
package ebitencanvas
