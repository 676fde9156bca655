package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultSkipped ResultLabel = "skipped"
	ResultFatal   ResultLabel = "fatal"
)

// Recorder defines observability hooks for generation runs.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome ResultLabel)
	IncFragmentsWritten(level string)
	SetModules(n int)
	IncArtifactsRelocated(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncRunOutcome(ResultLabel)                  {}
func (NoopRecorder) IncFragmentsWritten(string)                 {}
func (NoopRecorder) SetModules(int)                             {}
func (NoopRecorder) IncArtifactsRelocated(int)                  {}
