// Copyright 2026 The Zenith2D Authors
// SPDX-License-Identifier: MIT

// Package surface provides an offscreen render target for the zenith
// renderer.
//
// ImageSurface renders into an *image.RGBA on the CPU. It implements
// zenith.Backend, so it accepts vertex batches and pixmap uploads, and
// zenith.VectorBackend, backed by golang.org/x/image/vector, so Hardware
// mode draws anti-aliased native shapes on it.
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(zenith.Black)
//	r := zenith.NewRenderer(s)
//	_ = r.FillRect(zenith.R(100, 100, 200, 120), zenith.Red)
//
//	img := s.Snapshot()
//
// Headless tools and tests use it in place of a window. Uploaded pixmaps
// are composited with golang.org/x/image/draw, which also scales finished
// frames for output.
package surface
