// Package watch reruns a job whenever one of a set of files changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
)

// DefaultDebounce collapses bursts of editor writes into one run.
const DefaultDebounce = 500 * time.Millisecond

// RunFunc is invoked after a debounced change. Errors are logged and the
// watcher keeps going.
type RunFunc func(ctx context.Context) error

// Watcher monitors individual files through their parent directories, which
// survives editors that replace files on save.
type Watcher struct {
	files    map[string]struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	run      RunFunc
	requests chan struct{}
}

// New prepares a watcher for paths. A debounce of zero uses DefaultDebounce.
func New(paths []string, debounce time.Duration, run RunFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "failed to create file watcher").Build()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		files:    make(map[string]struct{}),
		watcher:  fw,
		debounce: debounce,
		run:      run,
		requests: make(chan struct{}, 1),
	}
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, ferrors.IOFailure("resolve", p, err)
		}
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, seen := dirs[dir]; seen {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, ferrors.IOFailure("watch", dir, err)
		}
		dirs[dir] = struct{}{}
	}
	return w, nil
}

// Files returns the number of watched files.
func (w *Watcher) Files() int { return len(w.files) }

// Trigger asks for a run without a file change. Requests made while one is
// already pending collapse into it.
func (w *Watcher) Trigger() {
	select {
	case w.requests <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is done. Jobs run on the calling goroutine, so a
// change landing during a run schedules exactly one follow-up run.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Warn("Error closing file watcher", logfields.Error(err))
		}
	}()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			slog.Debug("Change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", logfields.Error(err))
		case <-w.requests:
			slog.Debug("Run requested")
			w.rerun(ctx)
		case <-timer.C:
			w.rerun(ctx)
		}
	}
}

func (w *Watcher) rerun(ctx context.Context) {
	if err := w.run(ctx); err != nil {
		slog.Error("Rerun failed", logfields.Error(err))
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	_, ok := w.files[filepath.Clean(ev.Name)]
	return ok
}
