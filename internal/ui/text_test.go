package ui

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLevelFormatterWithColor(t *testing.T) {
	// Ensure NO_COLOR is not set for this test.
	os.Unsetenv("NO_COLOR")
	// Force color output for testing.
	color.NoColor = false

	result := LevelFormatter("ERROR").Sprint("ERROR")

	// Verify it contains ANSI escape codes (color output).
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("LevelFormatter(ERROR).Sprint should contain ANSI escape codes when color is enabled, got: %q", result)
	}
}

func TestLevelFormatterWithNoColor(t *testing.T) {
	// Set NO_COLOR for this test.
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	tests := []struct {
		name  string
		level string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warning", "WARNING"},
		{"error", "ERROR"},
		{"critical", "CRITICAL"},
		{"custom trace", "TRACE"},
		{"custom all", "ALL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LevelFormatter(tt.level).Sprint(tt.level)
			if got != tt.level {
				t.Errorf("LevelFormatter(%q).Sprint = %q, want plain %q", tt.level, got, tt.level)
			}
		})
	}
}

func TestLevelFormatterUnknownLevel(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	// Unknown level names format uncolored even when color is enabled.
	result := LevelFormatter("BOGUS").Sprint("BOGUS")
	if result != "BOGUS" {
		t.Errorf("LevelFormatter(BOGUS).Sprint = %q, want plain %q", result, "BOGUS")
	}
}

func TestLevelFormatterCaseInsensitive(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	color.NoColor = false

	upper := LevelFormatter("WARNING").Sprint("x")
	lower := LevelFormatter("warning").Sprint("x")
	if upper != lower {
		t.Errorf("LevelFormatter should be case-insensitive: %q != %q", upper, lower)
	}
}

func TestFormatterSprintf(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	result := LevelFormatter("INFO").Sprintf("%-8s", "INFO")
	want := "INFO    "
	if result != want {
		t.Errorf("Sprintf() = %q, want %q", result, want)
	}
}

func TestEnsureNewline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "\n"},
		{"no newline", "done", "done\n"},
		{"has newline", "done\n", "done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureNewline(tt.input); got != tt.want {
				t.Errorf("EnsureNewline(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNoColorFunction(t *testing.T) {
	// Test with NO_COLOR set.
	os.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
	os.Unsetenv("NO_COLOR")

	// Test with color.NoColor set.
	originalNoColor := color.NoColor
	color.NoColor = true
	if !noColor() {
		t.Error("noColor() should return true when color.NoColor is true")
	}
	color.NoColor = originalNoColor
}
