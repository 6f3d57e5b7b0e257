package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color *color.Color
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() || f.color == nil {
		return text
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() || f.color == nil {
		return text
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Check NO_COLOR environment variable (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's detection (terminal capability, TERM=dumb, etc.).
	return color.NoColor
}

// levelColors maps severity level names to their terminal colors.
// Unknown names fall back to an uncolored passthrough.
var levelColors = map[string]Formatter{
	"ALL":      {color.New(color.FgMagenta)},
	"TRACE":    {color.New(color.FgMagenta)},
	"DEBUG":    {color.New(color.FgCyan)},
	"INFO":     {color.New(color.FgWhite)},
	"WARNING":  {color.New(color.FgYellow)},
	"ERROR":    {color.New(color.FgRed)},
	"CRITICAL": {color.New(color.FgRed, color.Bold)},
}

// LevelFormatter returns the formatter for a severity level name.
// The lookup is case-insensitive; unmapped names format uncolored.
func LevelFormatter(name string) Formatter {
	if f, ok := levelColors[strings.ToUpper(name)]; ok {
		return f
	}
	return Formatter{}
}

// Semantic formatters for status glyphs in command output.
var (
	// Success formats success indicators and messages.
	Success = Formatter{color.New(color.FgGreen)}

	// Error formats error indicators and messages.
	Error = Formatter{color.New(color.FgRed)}

	// Info formats informational hints and directional indicators.
	Info = Formatter{color.New(color.FgCyan)}
)
