package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Page", KeyPage, "colors", Page("colors")},
		{"Stage", KeyStage, "render_pages", Stage("render_pages")},
		{"Source", KeySource, "variables/_colors.scss", Source("variables/_colors.scss")},
		{"Output", KeyOutput, "docs", Output("docs")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Outcome", KeyOutcome, "success", Outcome("success")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Errorf("%s: key = %q, want %q", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Errorf("%s: value = %q, want %q", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := Entries(12); a.Key != KeyEntries || a.Value.Int64() != 12 {
		t.Errorf("unexpected entries attr %v", a)
	}
	if a := DurationMS(1.5); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Errorf("unexpected duration attr %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Errorf("expected empty value for nil error, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Errorf("expected boom, got %q", a.Value.String())
	}
}
