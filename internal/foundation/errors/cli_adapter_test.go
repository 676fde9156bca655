package errors

import (
	"bytes"
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
		{"validation error", ValidationError("bad flag").Build(), 2},
		{"model error", ModelError("duplicate module").Build(), 3},
		{"config error", ConfigError("bad config").Build(), 7},
		{"internal error", InternalError("boom").Build(), 10},
		{"io failure", IOFailure("write", "/tmp/x", errors.New("disk full")), 11},
		{"history error", NewError(CategoryHistory, "store closed").Build(), 12},
		{"unclassified error", errors.New("unknown"), 1},
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

	ioErr := IOFailure("mkdir", "/ro/docs", errors.New("permission denied"))

	if got := quiet.FormatError(ioErr); got != "io failure: mkdir (/ro/docs): permission denied" {
		t.Errorf("unexpected quiet format %q", got)
	}
	if got := verbose.FormatError(ioErr); got != ioErr.Error() {
		t.Errorf("expected verbose format to be the full error, got %q", got)
	}
	if got := quiet.FormatError(ConfigError("application name required").Build()); got != "application name required" {
		t.Errorf("unexpected config format %q", got)
	}
	if got := quiet.FormatError(errors.New("x")); got != "Error: x" {
		t.Errorf("unexpected unclassified format %q", got)
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logs, out bytes.Buffer
	adapter := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logs, nil)))
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(IOFailure("copy", "/dest/openapi.json", errors.New("no such file")))

	if code != 11 {
		t.Errorf("expected exit code 11, got %d", code)
	}
	if !strings.Contains(out.String(), "/dest/openapi.json") {
		t.Errorf("expected path in user output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "category=filesystem") {
		t.Errorf("expected category in log output, got %q", logs.String())
	}
}
