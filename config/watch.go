package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kosmit147/zenith2d"
)

// settleDelay is how long the watched file must stay quiet after a write
// before it is reloaded.
const settleDelay = 100 * time.Millisecond

// Watch reloads the file at path whenever it is written or replaced and
// calls fn with every configuration that loads and validates. A burst of
// events is collapsed into one reload once the file has been quiet for
// settleDelay, so a save that truncates before writing is never read half
// done. Empty files and files that fail to load are logged and skipped; the
// previous configuration stays in effect.
//
// Watch blocks until ctx is done. fn runs on the watching goroutine, so
// callers that own single-threaded state should hand the value over a
// channel.
func Watch(ctx context.Context, path string, logger *slog.Logger, fn func(Config)) error {
	return watch(ctx, path, logger, nil, fn)
}

// watch implements Watch. ready, when set, is called once the watch is
// registered.
func watch(ctx context.Context, path string, logger *slog.Logger, ready func(), fn func(Config)) error {
	if logger == nil {
		logger = zenith.NopLogger()
	}
	if _, err := FormatOf(path); err != nil {
		return err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch: %w", err)
	}
	defer w.Close()

	// Editors often save by renaming a temp file over the original, which
	// drops a watch on the file itself. Watching the directory survives it.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(target), err)
	}
	logger.Info("config: watching", "path", target)
	if ready != nil {
		ready()
	}

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-settle.C:
			cfg, err := reload(target)
			if err != nil {
				logger.Warn("config: reload failed", "path", target, "error", err)
				continue
			}
			if cfg == nil {
				logger.Debug("config: reload skipped, file is empty", "path", target)
				continue
			}
			logger.Info("config: reloaded", "path", target)
			fn(*cfg)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			settle.Reset(settleDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config: watcher error", "error", err)
		}
	}
}

// reload loads path, returning nil without error when the file is empty.
func reload(path string) (*Config, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if fi.Size() == 0 {
		return nil, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
