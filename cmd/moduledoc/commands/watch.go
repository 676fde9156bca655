package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"git.home.luguber.info/inful/moduledoc/internal/config"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before a rerun" default:"500ms"`
	Publish  bool          `help:"Also move the documents to publish.destination after each run"`
	Every    time.Duration `help:"Also rerun at this interval (0 disables)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	var dest string
	if w.Publish {
		if dest, err = publishDestination("", cfg); err != nil {
			return err
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	run := func(ctx context.Context) error {
		// A fresh runner reloads the model and starts a new run id.
		r := newRunner(cfg, "", false)
		defer r.flushMetrics()
		d, err := r.doc.WriteDocumentation(ctx)
		if err == nil && dest != "" {
			err = d.MoveToFolder(dest)
		}
		r.recordHistory(ctx, err)
		if err != nil {
			return err
		}
		summarize(d.Report())
		return nil
	}
	if err := run(ctx); err != nil {
		slog.Error("Initial run failed", logfields.Error(err))
	}

	paths := watchedPaths(cfg)
	watcher, err := watch.New(paths, w.Debounce, run)
	if err != nil {
		return err
	}
	if w.Every > 0 {
		sched, err := watch.NewScheduler(w.Every, watcher.Trigger)
		if err != nil {
			return err
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Warn("Failed to stop scheduler", logfields.Error(err))
			}
		}()
	}
	slog.Info("Watching for changes", logfields.Count(watcher.Files()))
	return watcher.Run(ctx)
}

// watchedPaths lists the model file, the API schema source and every
// candidate location of the configuration resource whose directory exists.
func watchedPaths(cfg *config.Config) []string {
	paths := []string{cfg.Resolve(cfg.Model.Path)}
	if cfg.APISchema.Source != "" {
		paths = append(paths, cfg.Resolve(cfg.APISchema.Source))
	}
	for _, dir := range cfg.SearchPath() {
		if isDir(dir) {
			paths = append(paths, filepath.Join(dir, cfg.Configuration.Resource))
		}
	}
	return paths
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
