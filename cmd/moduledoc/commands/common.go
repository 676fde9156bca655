package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/moduledoc/internal/config"
	"git.home.luguber.info/inful/moduledoc/internal/configdoc"
	"git.home.luguber.info/inful/moduledoc/internal/diagram"
	"git.home.luguber.info/inful/moduledoc/internal/documenter"
	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/history"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/metrics"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"moduledoc.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Write module, configuration and index documents"`
	Publish  PublishCmd  `cmd:"" help:"Generate and move the documents into a folder"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever the model or configuration resource changes"`
	History  HistoryCmd  `cmd:"" help:"List recent documentation runs"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	setupLogging(level, config.LogFormatText)
	return nil
}

func setupLogging(level slog.Level, format config.LogFormat) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// loadConfig reads the configuration and applies its logging section unless
// --verbose already forced debug output.
func loadConfig(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	level := config.NormalizeLogLevel(cfg.Logging.Level).Slog()
	if root.Verbose {
		level = slog.LevelDebug
	}
	setupLogging(level, config.NormalizeLogFormat(cfg.Logging.Format))
	return cfg, nil
}

// runner bundles a configured Documenter with its optional metrics sink.
type runner struct {
	cfg      *config.Config
	doc      *documenter.Documenter
	recorder *metrics.PrometheusRecorder
}

func newRunner(cfg *config.Config, appName string, appendToExisting bool) *runner {
	r := &runner{cfg: cfg}
	var rec metrics.Recorder = metrics.NoopRecorder{}
	if cfg.Metrics.Textfile != "" {
		r.recorder = metrics.NewPrometheusRecorder(prometheus.NewRegistry())
		rec = r.recorder
	}
	if appName == "" {
		appName = cfg.Application.Name
	}

	manager := output.NewManager(cfg.Resolve(cfg.Output.BuildRoot), cfg.Output.WorkDir, cfg.Output.Subdir)
	primary := diagram.Chain{
		diagram.PlantUML{},
		diagram.APISchema{Source: cfg.Resolve(cfg.APISchema.Source)},
	}
	r.doc = documenter.New(appName, model.NewYAMLSource(cfg.Resolve(cfg.Model.Path)),
		documenter.WithManager(manager),
		documenter.WithPrimaryGenerator(primary),
		documenter.WithConfigLocator(configdoc.NewLocator(cfg.Configuration.Resource, cfg.SearchPath()...)),
		documenter.WithRecorder(rec),
		documenter.WithAppendToExisting(appendToExisting || cfg.Output.AppendToExisting),
	)
	return r
}

// flushMetrics writes the textfile export when one is configured. Failures
// are logged, they never fail the run.
func (r *runner) flushMetrics() {
	if r.recorder == nil {
		return
	}
	path := r.cfg.Resolve(r.cfg.Metrics.Textfile)
	if err := r.recorder.WriteTextfile(path); err != nil {
		slog.Warn("Failed to write metrics textfile", logfields.Path(path), logfields.Error(err))
	}
}

// recordHistory appends the run to the configured history store. Failures
// are logged, they never fail the run.
func (r *runner) recordHistory(ctx context.Context, runErr error) {
	if r.cfg.History.Path == "" {
		return
	}
	store, err := openHistory(r.cfg)
	if err != nil {
		slog.Warn("Failed to open run history", logfields.Error(err))
		return
	}
	defer func() { _ = store.Close() }()
	if err := store.Record(ctx, history.FromReport(r.doc.Report(), runErr)); err != nil {
		slog.Warn("Failed to record run", logfields.Error(err))
	}
}

func openHistory(cfg *config.Config) (*history.SQLiteStore, error) {
	path := cfg.Resolve(cfg.History.Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, ferrors.IOFailure("mkdir", filepath.Dir(path), err)
	}
	return history.NewSQLiteStore(path)
}

func summarize(rep documenter.RunReport) {
	slog.Info("Run summary",
		logfields.RunID(rep.RunID),
		slog.String("application", rep.Application),
		slog.Int("modules", rep.Modules),
		logfields.Count(rep.TotalFragments()),
		slog.Bool("configuration", rep.ConfigurationWritten),
		logfields.DurationMS(float64(rep.Duration().Microseconds())/1000))
}
