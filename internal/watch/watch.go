// Package watch reports changes to the diary file.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/chris-regnier/gitdiary/internal/logging"
)

// DefaultDebounce coalesces the burst of events produced by one save.
const DefaultDebounce = 150 * time.Millisecond

// Follower calls OnChange once per settled change to Path.
type Follower struct {
	Path     string
	Debounce time.Duration
	Logger   *slog.Logger
	OnChange func() error
}

// Run blocks until ctx is cancelled or OnChange returns an error.
//
// The parent directory is watched rather than the file itself, since an
// atomic save replaces the file and would drop a file-level watch.
func (f *Follower) Run(ctx context.Context) error {
	logger := f.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	debounce := f.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	target, err := filepath.Abs(f.Path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	logger.Debug("watch: started", slog.String("path", target))

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watch: stopped")
			return nil

		case <-fire:
			fire = nil
			if err := f.OnChange(); err != nil {
				return err
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: error", slog.String("error", err.Error()))
		}
	}
}
