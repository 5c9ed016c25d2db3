package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// redirect points the default logger at a buffer for the duration of a test.
func redirect(t *testing.T) *bytes.Buffer {
	t.Helper()

	saved := defaultLog
	t.Cleanup(func() { defaultLog = saved })

	buf := &bytes.Buffer{}
	Config(WithOutput(buf), WithLevel(LevelTrace), WithPretty(false))

	return buf
}

func TestPackage_ContextFunctions_UseDefaultLogger(t *testing.T) {
	buf := redirect(t)
	ctx := context.Background()

	TraceContext(ctx, "trace message")
	DebugContext(ctx, "debug message")
	InfoContext(ctx, "info message")
	WarnContext(ctx, "warn message")
	ErrorContext(ctx, "error message")

	out := buf.String()

	for _, want := range []string{
		"trace message",
		"debug message",
		"info message",
		"warn message",
		"error message",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestPackage_Config_UpdatesDefaultLogger(t *testing.T) {
	buf := redirect(t)

	Config(WithLevel(LevelError))

	ctx := context.Background()
	DebugContext(ctx, "filtered out")
	ErrorContext(ctx, "kept")

	out := buf.String()

	if strings.Contains(out, "filtered out") {
		t.Errorf("debug message logged after raising level: %q", out)
	}

	if !strings.Contains(out, "kept") {
		t.Errorf("error message missing: %q", out)
	}
}

func TestPackage_Default_ReflectsConfig(t *testing.T) {
	redirect(t)

	Config(WithLevel(LevelWarn), WithFormat(FormatJSON))

	logger := Default()

	if logger.level != LevelWarn {
		t.Errorf("Default().level = %v, want %v", logger.level, LevelWarn)
	}

	if logger.format != FormatJSON {
		t.Errorf("Default().format = %v, want %v", logger.format, FormatJSON)
	}
}
