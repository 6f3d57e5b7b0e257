package logging

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dkruger/scriptbase/internal/ui"
)

// sink is one output destination with its own formatter. The mutex
// serializes writes so concurrent log calls cannot interleave lines.
type sink struct {
	mu     sync.Mutex
	w      io.Writer
	format func(now time.Time, level, msg string) string
}

func (s *sink) write(now time.Time, level, msg string) {
	line := s.format(now, level, msg)
	s.mu.Lock()
	defer s.mu.Unlock()
	// A failing sink must not take down the script.
	_, _ = io.WriteString(s.w, line)
}

// newFileSink formats plain timestamped lines with millisecond precision.
func newFileSink(w io.Writer) *sink {
	return &sink{
		w: w,
		format: func(now time.Time, level, msg string) string {
			return fmt.Sprintf("%s %-8s | %s\n", now.Format("2006-01-02 15:04:05.000"), level, msg)
		},
	}
}

// newTerminalSink formats second-precision lines with the timestamp and
// level name colorized per the level color table. The message stays plain.
func newTerminalSink(w io.Writer) *sink {
	return &sink{
		w: w,
		format: func(now time.Time, level, msg string) string {
			f := ui.LevelFormatter(level)
			return fmt.Sprintf("%s %s | %s\n", f.Sprint(now.Format("15:04:05")), f.Sprintf("%-8s", level), msg)
		},
	}
}
