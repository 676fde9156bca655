package documenter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/moduledoc/internal/collector"
	"git.home.luguber.info/inful/moduledoc/internal/configdoc"
	"git.home.luguber.info/inful/moduledoc/internal/diagram"
	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/index"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/metrics"
	"git.home.luguber.info/inful/moduledoc/internal/model"
	"git.home.luguber.info/inful/moduledoc/internal/output"
	"git.home.luguber.info/inful/moduledoc/internal/relocate"
)

// Documenter produces the documentation artifacts of one application. It is
// not safe for concurrent use.
type Documenter struct {
	appName          string
	source           model.Source
	manager          *output.Manager
	primary          diagram.Generator
	locator          configdoc.Locator
	recorder         metrics.Recorder
	logger           *slog.Logger
	appendToExisting bool

	app    *model.Application
	lookup model.FragmentLookup
	report RunReport
}

// New returns a Documenter for the application served by source. A non-empty
// appName overrides the name the model carries.
func New(appName string, source model.Source, opts ...Option) *Documenter {
	d := &Documenter{
		appName:  appName,
		source:   source,
		primary:  diagram.PlantUML{},
		locator:  configdoc.NewLocator(configdoc.DefaultResource, "src/main/resources"),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.manager == nil {
		d.manager = output.NewManager("", ".", output.DefaultSubdir)
	}
	d.report = newRunReport(uuid.NewString())
	return d
}

// Manager exposes the output manager the Documenter writes through.
func (d *Documenter) Manager() *output.Manager { return d.manager }

// Application returns the loaded model, or nil before the first load.
func (d *Documenter) Application() *model.Application { return d.app }

// Report returns a snapshot of the current run report.
func (d *Documenter) Report() RunReport { return d.report.clone() }

func (d *Documenter) log() *slog.Logger {
	return d.logger.With(logfields.RunID(d.report.RunID))
}

// load loads the model once; later calls reuse it.
func (d *Documenter) load(ctx context.Context) error {
	if d.app != nil {
		return nil
	}
	if d.source == nil {
		return ferrors.ModelError("no model source configured").Build()
	}
	app, lookup, err := d.source.Load(ctx)
	if err != nil {
		return err
	}
	if d.appName != "" && d.appName != app.Name {
		named := *app
		named.Name = d.appName
		app = &named
	}
	if app.Name == "" {
		return ferrors.ValidationError("application name is required").Build()
	}
	d.app = app
	d.lookup = lookup
	return nil
}

// WriteDocumentation generates every document into the output directory and
// returns the receiver so a MoveToFolder can follow.
func (d *Documenter) WriteDocumentation(ctx context.Context) (*Documenter, error) {
	d.report = newRunReport(uuid.NewString())
	log := d.log()

	err := d.load(ctx)
	if err == nil {
		d.report.Application = d.app.Name
		d.report.Modules = len(d.app.Modules)
		d.recorder.SetModules(len(d.app.Modules))
		log.Info("Writing documentation",
			slog.String("application", d.app.Name),
			logfields.Count(len(d.app.Modules)),
			logfields.Path(d.manager.OutputDirectory()))
		err = d.runStages(ctx, []stageDef{
			{StagePrimary, d.stagePrimary},
			{StageModuleDocs, d.stageModuleDocs},
			{StageConfigurationDoc, d.stageConfigurationDoc},
			{StageApplicationIndex, d.stageApplicationIndex},
		})
	}

	d.report.End = time.Now()
	d.recorder.ObserveRunDuration(d.report.Duration())
	d.report.Outcome = metrics.ResultSuccess
	if err != nil {
		d.report.Outcome = metrics.ResultFatal
		d.recorder.IncRunOutcome(metrics.ResultFatal)
		log.Error("Documentation run failed", logfields.Error(err))
		return d, err
	}
	d.recorder.IncRunOutcome(metrics.ResultSuccess)
	log.Info("Documentation written",
		logfields.Count(d.report.TotalFragments()),
		logfields.DurationMS(float64(d.report.Duration().Microseconds())/1000))
	return d, nil
}

// MoveToFolder copies the generated artifacts into destination. Copies made
// before a failure are left in place.
func (d *Documenter) MoveToFolder(destination string) error {
	if err := d.load(context.Background()); err != nil {
		return err
	}
	if destination == "" {
		return ferrors.ValidationError("destination folder is required").Build()
	}

	r := relocate.New(d.manager, d.app.Modules)
	var copied []string
	err := d.runStage(context.Background(), stageDef{StageRelocate, func(context.Context) (metrics.ResultLabel, error) {
		var moveErr error
		copied, moveErr = r.Move(destination)
		return metrics.ResultSuccess, moveErr
	}})
	d.report.Artifacts = copied
	d.recorder.IncArtifactsRelocated(len(copied))
	if err != nil {
		d.report.Outcome = metrics.ResultFatal
		return err
	}
	d.log().Info("Moved documentation", logfields.Path(destination), logfields.Count(len(copied)))
	return nil
}

func (d *Documenter) stagePrimary(ctx context.Context) (metrics.ResultLabel, error) {
	if d.primary == nil {
		return metrics.ResultSkipped, nil
	}
	if err := d.primary.Generate(ctx, d.manager, d.app); err != nil {
		return metrics.ResultFatal, err
	}
	return metrics.ResultSuccess, nil
}

func (d *Documenter) stageModuleDocs(context.Context) (metrics.ResultLabel, error) {
	w := collector.NewModuleWriter(d.manager).OnWrite(func(f collector.Fragment) {
		d.recorder.IncFragmentsWritten(string(f.Level))
	})
	if !d.appendToExisting {
		if err := w.Reset(d.app.Modules); err != nil {
			return metrics.ResultFatal, err
		}
	}
	err := w.WriteAll(d.app.Modules, d.lookup)
	d.report.Fragments = w.Counts()
	if err != nil {
		return metrics.ResultFatal, err
	}
	for _, m := range d.app.Modules {
		d.log().Debug("Module documented", logfields.Module(m.Name), logfields.Count(w.Count(m.Name)))
	}
	return metrics.ResultSuccess, nil
}

func (d *Documenter) stageConfigurationDoc(context.Context) (metrics.ResultLabel, error) {
	written, err := configdoc.Write(d.manager, d.locator)
	if err != nil {
		return metrics.ResultFatal, err
	}
	d.report.ConfigurationWritten = written
	if !written {
		return metrics.ResultSkipped, nil
	}
	return metrics.ResultSuccess, nil
}

func (d *Documenter) stageApplicationIndex(context.Context) (metrics.ResultLabel, error) {
	if err := index.Write(d.manager, d.app); err != nil {
		return metrics.ResultFatal, err
	}
	return metrics.ResultSuccess, nil
}
