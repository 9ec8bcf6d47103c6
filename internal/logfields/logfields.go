package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPage       = "page"
	KeyStage      = "stage"
	KeySource     = "source"
	KeyOutput     = "output"
	KeyPath       = "path"
	KeyEntries    = "entries"
	KeyDurationMS = "duration_ms"
	KeyOutcome    = "outcome"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Page(name string) slog.Attr      { return slog.String(KeyPage, name) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Source(path string) slog.Attr    { return slog.String(KeySource, path) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
