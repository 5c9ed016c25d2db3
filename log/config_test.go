package log

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_ParseLevel_RecognizesAllLevels(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"trace", "trace", LevelTrace},
		{"trace_upper", "TRACE", LevelTrace},
		{"debug", "debug", LevelDebug},
		{"info", "info", LevelInfo},
		{"warn", "WARN", LevelWarn},
		{"error", "error", LevelError},
		{"offset", "WARN+2", LevelWarn + 2},
		{"unknown_defaults", "verbose", DefaultLevel},
		{"empty_defaults", "", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestConfig_ParseFormat_RecognizesFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
	}{
		{"text", "text", FormatText},
		{"json", "json", FormatJSON},
		{"json_mixed_case", " JSON ", FormatJSON},
		{"unknown_defaults_to_text", "yaml", DefaultFormat},
		{"empty_defaults_to_text", "", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v",
					tt.input, got, tt.expected)
			}
		})
	}
}

func TestConfig_DefaultFormat_IsText(t *testing.T) {
	// Terminal diagnostics default to the text format; JSON is opt-in.
	if DefaultFormat != FormatText {
		t.Errorf("DefaultFormat = %v, want %v", DefaultFormat, FormatText)
	}
}

func TestConfig_WithLevel_SetsLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected Level
	}{
		{"trace", LevelTrace, LevelTrace},
		{"debug", LevelDebug, LevelDebug},
		{"info", LevelInfo, LevelInfo},
		{"warn", LevelWarn, LevelWarn},
		{"error", LevelError, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithLevel(tt.level)(config{})

			if result.level != tt.expected {
				t.Errorf("expected level %v, got %v", tt.expected, result.level)
			}
		})
	}
}

func TestConfig_WithCaller_SetsCaller(t *testing.T) {
	tests := []struct {
		name     string
		enable   bool
		expected bool
	}{
		{"enabled", true, true},
		{"disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithCaller(tt.enable)(config{})

			if result.caller != tt.expected {
				t.Errorf("expected caller %v, got %v",
					tt.expected, result.caller)
			}
		})
	}
}

func TestConfig_WithFormat_SetsFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		expected Format
	}{
		{"text", FormatText, FormatText},
		{"json", FormatJSON, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithFormat(tt.format)(config{})

			if result.format != tt.expected {
				t.Errorf("expected format %v, got %v",
					tt.expected, result.format)
			}
		})
	}
}

func TestConfig_Options_ShareMutexDiscipline(t *testing.T) {
	// Every option constructs a mutex when applied to a zero config.
	opts := []Option{
		WithLevel(LevelDebug),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(false),
		WithTimeLayout("RFC3339"),
		WithOutput(nil),
		WithDefaults(nil),
	}

	for _, opt := range opts {
		if result := opt(config{}); result.mutex == nil {
			t.Error("option left config without mutex")
		}
	}
}

func TestConfig_FormatTime_NamedLayouts(t *testing.T) {
	moment := time.Date(2024, 3, 15, 10, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name     string
		layout   string
		expected string
	}{
		{"rfc3339", "RFC3339", "2024-03-15T10:30:45Z"},
		{"rfc3339_lower", "rfc3339", "2024-03-15T10:30:45Z"},
		{"kitchen", "Kitchen", "10:30AM"},
		{"milli_alias", "ms", moment.Format(time.StampMilli)},
		{"custom_layout", "2006/01/02", "2024/03/15"},
		{"none_disables", "none", ""},
		{"empty_disables", "", ""},
		{"whitespace_disables", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := makeFormatTimeFunc(tt.layout)

			if got := format(moment); got != tt.expected {
				t.Errorf("layout %q formatted %q, want %q",
					tt.layout, got, tt.expected)
			}
		})
	}
}

func TestConfig_FormatTime_DefaultsToRFC3339(t *testing.T) {
	c := makeConfig(nil)

	moment := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	if got := c.stamp(moment); !strings.Contains(got, "2024-03-15T10:30:45") {
		t.Errorf("default layout formatted %q, want RFC3339", got)
	}
}
