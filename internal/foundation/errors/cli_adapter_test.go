package errors

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("unknown page").Build(), 2},
		{"config", ConfigError("bad config").Build(), 7},
		{"source", SourceError("unreadable").Build(), 8},
		{"render", RenderError("template").Build(), 11},
		{"filesystem", FileSystemError("write").Build(), 11},
		{"internal", InternalError("boom").Build(), 10},
		{"unclassified", errors.New("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, slog.Default())
	verbose := NewCLIErrorAdapter(true, slog.Default())

	cfgErr := ConfigError("configuration file not readable").WithContext("path", "rexdocs.yaml").Build()
	if got := quiet.FormatError(cfgErr); got != "Error: configuration file not readable (rexdocs.yaml)" {
		t.Errorf("unexpected quiet format %q", got)
	}
	if got := verbose.FormatError(cfgErr); !strings.HasPrefix(got, "[config:fatal]") {
		t.Errorf("unexpected verbose format %q", got)
	}
	if got := quiet.FormatError(InternalError("boom").Build()); !strings.Contains(got, "use -v") {
		t.Errorf("expected internal errors to be hidden, got %q", got)
	}
	canceled := WrapError(context.Canceled, CategoryRuntime, "documentation run canceled").Warning().Build()
	if got := quiet.FormatError(canceled); got != "Error: documentation run canceled" {
		t.Errorf("unexpected cancel format %q", got)
	}
	if got := quiet.FormatError(RuntimeError("worker crashed").Build()); !strings.Contains(got, "use -v") {
		t.Errorf("expected runtime errors to be hidden, got %q", got)
	}
	if got := quiet.FormatError(errors.New("plain")); got != "Error: plain" {
		t.Errorf("unexpected plain format %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var out, logs bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(RenderError("page colors failed").Build())

	if code != 11 {
		t.Errorf("expected exit code 11, got %d", code)
	}
	if !strings.Contains(logs.String(), "page colors failed") {
		t.Errorf("expected fatal error to be logged, got %q", logs.String())
	}
	if out.Len() == 0 {
		t.Error("expected user-facing message")
	}
}
