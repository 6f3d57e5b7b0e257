// Package progress renders a deterministic terminal progress bar.
//
// Unlike a spinner, the bar reflects real completion: the caller drives
// it by calling Render once per step with a non-decreasing current
// value from 0 to Total inclusive. Each call redraws the same terminal
// line via a carriage return; the final call appends the newline.
package progress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrInvalidTotal is returned when a bar is built with a non-positive total.
	ErrInvalidTotal = errors.New("progress: total must be positive")

	// ErrOutOfRange is returned when current is negative or exceeds the total.
	ErrOutOfRange = errors.New("progress: current out of range")
)

// defaultPrefix keeps short bars visually aligned with log output.
const defaultPrefix = "                 "

// Bar is a configured progress bar. Construct with NewBar, then adjust
// the exported fields before the first Render call if needed.
type Bar struct {
	Total    int
	Prefix   string
	Suffix   string
	Decimals int       // digits after the decimal point in the percentage
	Length   int       // character length of the bar
	Fill     rune      // fill character for the completed part
	Out      io.Writer // defaults to os.Stdout
}

// NewBar returns a bar with the reference defaults: one percent decimal,
// 82 characters wide, '█' fill, writing to stdout.
func NewBar(total int) (*Bar, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTotal, total)
	}
	return &Bar{
		Total:    total,
		Prefix:   defaultPrefix,
		Decimals: 1,
		Length:   82,
		Fill:     '█',
		Out:      os.Stdout,
	}, nil
}

// Render draws the bar for the given current value, overwriting the
// previous line. When current equals Total the line is terminated with
// a newline instead of being left open for the next redraw.
func (b *Bar) Render(current int) error {
	if current < 0 || current > b.Total {
		return fmt.Errorf("%w: %d of %d", ErrOutOfRange, current, b.Total)
	}

	prefix := b.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	out := b.Out
	if out == nil {
		out = os.Stdout
	}

	percent := 100 * float64(current) / float64(b.Total)
	filled := b.Length * current / b.Total
	bar := strings.Repeat(string(b.Fill), filled) + strings.Repeat("-", b.Length-filled)

	if _, err := fmt.Fprintf(out, "\r%s |%s| %.*f%% %s", prefix, bar, b.Decimals, percent, b.Suffix); err != nil {
		return err
	}
	if current == b.Total {
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}
