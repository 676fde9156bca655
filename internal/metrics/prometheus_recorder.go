package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "moduledoc"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry          *prom.Registry
	stageDuration     *prom.HistogramVec
	stageResults      *prom.CounterVec
	runDuration       prom.Histogram
	runOutcome        *prom.CounterVec
	fragments         *prom.CounterVec
	modules           prom.Gauge
	artifactsRelocate prom.Counter
}

// NewPrometheusRecorder constructs the collectors and registers them on reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual generation stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		stageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Total documentation run duration",
			Buckets:   prom.DefBuckets,
		}),
		runOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Run outcomes by final status",
		}, []string{"outcome"}),
		fragments: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fragments_written_total",
			Help:      "Documentation fragments appended to module documents, by attachment level",
		}, []string{"level"}),
		modules: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "modules",
			Help:      "Number of modules in the last documented model",
		}),
		artifactsRelocate: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_relocated_total",
			Help:      "Artifacts copied into a publishing directory",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.runDuration, pr.runOutcome, pr.fragments, pr.modules, pr.artifactsRelocate)
	return pr
}

// Registry returns the registry the collectors are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome ResultLabel) {
	p.runOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncFragmentsWritten(level string) {
	p.fragments.WithLabelValues(level).Inc()
}

func (p *PrometheusRecorder) SetModules(n int) {
	p.modules.Set(float64(n))
}

func (p *PrometheusRecorder) IncArtifactsRelocated(n int) {
	p.artifactsRelocate.Add(float64(n))
}

// WriteTextfile exports the registry in the text exposition format to path,
// atomically replacing any previous file.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.registry)
}
