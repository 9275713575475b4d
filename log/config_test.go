package log

import (
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace": LevelTrace,
		"TRACE": LevelTrace,
		"debug": LevelDebug,
		"info":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
		"bogus": DefaultLevel,
		"":      DefaultLevel,
	}

	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", input, want, got)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelTrace: "trace",
		LevelDebug: "debug",
		LevelInfo:  "info",
		LevelWarn:  "warn",
		LevelError: "error",
	}

	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"json":   FormatJSON,
		" JSON ": FormatJSON,
		"text":   FormatText,
		"bogus":  DefaultFormat,
		"":       DefaultFormat,
	}

	for input, want := range tests {
		if got := ParseFormat(input); got != want {
			t.Errorf("ParseFormat(%q): expected %v, got %v", input, want, got)
		}
	}
}

func TestLevelsAndFormats(t *testing.T) {
	levels := slices.Collect(Levels())
	if !slices.Contains(levels, "trace") || !slices.Contains(levels, "error") {
		t.Errorf("Expected levels to span trace..error, got %v", levels)
	}

	formats := slices.Collect(Formats())
	if !slices.Equal(formats, []string{"text", "json"}) {
		t.Errorf("Expected formats [text json], got %v", formats)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	if got := makeFormatTimeFunc("RFC3339")(at); got != "2024-06-01T12:30:00Z" {
		t.Errorf("Expected RFC3339 timestamp, got %q", got)
	}

	if got := makeFormatTimeFunc("none")(at); got != "" {
		t.Errorf("Expected empty timestamp for layout none, got %q", got)
	}

	if got := makeFormatTimeFunc("2006")(at); got != "2024" {
		t.Errorf("Expected custom layout passthrough, got %q", got)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithLevel(LevelWarn), WithTimeLayout("none"))

	logger.Info("suppressed")
	logger.Warn("emitted")

	out := sb.String()

	if strings.Contains(out, "suppressed") {
		t.Errorf("Expected info message to be filtered, got %q", out)
	}

	if !strings.Contains(out, "emitted") {
		t.Errorf("Expected warn message in output, got %q", out)
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb,
		WithFormat(FormatJSON),
		WithTimeLayout("none"),
	)

	logger.Info("hello")

	out := sb.String()

	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"msg":"hello"`) {
		t.Errorf("Expected JSON output, got %q", out)
	}
}

func TestLoggerTraceLevelName(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithLevel(LevelTrace), WithTimeLayout("none"))

	logger.Trace("deep detail")

	out := sb.String()

	if !strings.Contains(out, "TRACE") {
		t.Errorf("Expected TRACE level name in output, got %q", out)
	}

	if strings.Contains(out, "DEBUG-4") {
		t.Errorf("Expected raw offset level to be renamed, got %q", out)
	}
}

func TestLoggerWrap(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithTimeLayout("none"))
	quieter := logger.Wrap(WithLevel(LevelError))

	quieter.Warn("suppressed")
	logger.Warn("still emitted")

	out := sb.String()

	if strings.Contains(out, "suppressed") {
		t.Errorf("Expected wrapped logger to filter warn, got %q", out)
	}

	if !strings.Contains(out, "still emitted") {
		t.Errorf("Expected original logger unaffected, got %q", out)
	}
}
