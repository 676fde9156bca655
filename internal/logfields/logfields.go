package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyModule     = "module"
	KeyLevel      = "fragment_level" // "level" is taken by slog
	KeyStage      = "stage"
	KeyPath       = "path"
	KeyArtifact   = "artifact"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Helpers returning slog.Attr so callers can compose them.
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Module(name string) slog.Attr { return slog.String(KeyModule, name) }
func Level(l string) slog.Attr { return slog.String(KeyLevel, l) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Artifact(name string) slog.Attr { return slog.String(KeyArtifact, name) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
