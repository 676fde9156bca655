package documenter

import (
	"maps"
	"slices"
	"time"

	"git.home.luguber.info/inful/moduledoc/internal/metrics"
)

// RunReport captures what a run produced.
type RunReport struct {
	RunID       string
	Application string
	Modules     int
	// Fragments counts appended fragments per module name.
	Fragments            map[string]int
	ConfigurationWritten bool
	// Outcome is success or fatal once the run finished.
	Outcome metrics.ResultLabel
	// Artifacts are the destination paths of the last MoveToFolder.
	Artifacts      []string
	StageDurations map[StageName]time.Duration
	StageResults   map[StageName]metrics.ResultLabel
	Start          time.Time
	End            time.Time
}

func newRunReport(runID string) RunReport {
	return RunReport{
		RunID:          runID,
		Fragments:      make(map[string]int),
		StageDurations: make(map[StageName]time.Duration),
		StageResults:   make(map[StageName]metrics.ResultLabel),
		Start:          time.Now(),
	}
}

// Duration is the wall time of the run.
func (r RunReport) Duration() time.Duration {
	if r.End.IsZero() {
		return 0
	}
	return r.End.Sub(r.Start)
}

// TotalFragments sums fragments over all modules.
func (r RunReport) TotalFragments() int {
	total := 0
	for _, n := range r.Fragments {
		total += n
	}
	return total
}

func (r RunReport) clone() RunReport {
	r.Fragments = maps.Clone(r.Fragments)
	r.Artifacts = slices.Clone(r.Artifacts)
	r.StageDurations = maps.Clone(r.StageDurations)
	r.StageResults = maps.Clone(r.StageResults)
	return r
}
