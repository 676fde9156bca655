package documenter

import (
	"log/slog"

	"git.home.luguber.info/inful/moduledoc/internal/configdoc"
	"git.home.luguber.info/inful/moduledoc/internal/diagram"
	"git.home.luguber.info/inful/moduledoc/internal/metrics"
	"git.home.luguber.info/inful/moduledoc/internal/output"
)

// Option configures a Documenter.
type Option func(*Documenter)

// WithManager sets the output manager (default: probed build root in the
// working directory).
func WithManager(m *output.Manager) Option {
	return func(d *Documenter) { d.manager = m }
}

// WithPrimaryGenerator replaces the generator run before module documents.
// A nil generator disables the primary stage.
func WithPrimaryGenerator(g diagram.Generator) Option {
	return func(d *Documenter) { d.primary = g }
}

func WithConfigLocator(l configdoc.Locator) Option {
	return func(d *Documenter) { d.locator = l }
}

func WithRecorder(r metrics.Recorder) Option {
	return func(d *Documenter) {
		if r != nil {
			d.recorder = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Documenter) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithAppendToExisting keeps module documents of earlier runs and appends to
// them. By default each run starts module documents afresh.
func WithAppendToExisting(keep bool) Option {
	return func(d *Documenter) { d.appendToExisting = keep }
}
