package zenith

import "log/slog"

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Software rasterizer with boundary fill (default)
//	r := zenith.NewRenderer(backend)
//
//	// Native shapes, flood fill for the software fallback, verbose logging
//	r := zenith.NewRenderer(backend,
//		zenith.WithRenderingAlgorithm(zenith.Hardware),
//		zenith.WithFillAlgorithm(zenith.FloodFill),
//		zenith.WithLogger(logger))
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	algorithm RenderingAlgorithm
	fill      FillAlgorithm
	logger    *slog.Logger
	workers   int
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		algorithm: Software,
		fill:      BoundaryFill,
		logger:    nil, // NopLogger
		workers:   0,   // single-threaded clear
	}
}

// WithRenderingAlgorithm sets the initial rendering algorithm.
func WithRenderingAlgorithm(a RenderingAlgorithm) RendererOption {
	return func(o *rendererOptions) {
		o.algorithm = a
	}
}

// WithFillAlgorithm sets the initial fill algorithm.
func WithFillAlgorithm(a FillAlgorithm) RendererOption {
	return func(o *rendererOptions) {
		o.fill = a
	}
}

// WithLogger sets the logger for the Renderer. A nil logger keeps the
// renderer silent.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	}))
//	r := zenith.NewRenderer(backend, zenith.WithLogger(logger))
func WithLogger(l *slog.Logger) RendererOption {
	return func(o *rendererOptions) {
		o.logger = l
	}
}

// WithParallelClear clears the scratch pixmap on a pool of the given number
// of workers. Values below 2 keep the clear single-threaded. The output is
// identical either way.
func WithParallelClear(workers int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = workers
	}
}
