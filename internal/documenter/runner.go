package documenter

import (
	"context"
	"time"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
	"git.home.luguber.info/inful/moduledoc/internal/logfields"
	"git.home.luguber.info/inful/moduledoc/internal/metrics"
)

// stageFunc runs one stage and reports whether it did any work.
type stageFunc func(ctx context.Context) (metrics.ResultLabel, error)

type stageDef struct {
	Name StageName
	Fn   stageFunc
}

// runStages executes stages in order, recording timing and stopping on the
// first error.
func (d *Documenter) runStages(ctx context.Context, stages []stageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			d.recordStage(st.Name, 0, metrics.ResultFatal)
			return ferrors.WrapError(err, ferrors.CategoryInternal, "run canceled").
				WithContext("stage", string(st.Name)).
				Build()
		}
		if err := d.runStage(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func (d *Documenter) runStage(ctx context.Context, st stageDef) error {
	t0 := time.Now()
	result, err := st.Fn(ctx)
	dur := time.Since(t0)
	if err != nil {
		result = metrics.ResultFatal
	}
	d.recordStage(st.Name, dur, result)

	log := d.log().With(logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))
	if err != nil {
		log.Error("Stage failed", logfields.Error(err))
		return err
	}
	log.Debug("Stage complete", "result", string(result))
	return nil
}

func (d *Documenter) recordStage(name StageName, dur time.Duration, result metrics.ResultLabel) {
	d.report.StageDurations[name] = dur
	d.report.StageResults[name] = result
	d.recorder.ObserveStageDuration(string(name), dur)
	d.recorder.IncStageResult(string(name), result)
}
