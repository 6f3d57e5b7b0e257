// Package logging provides the dual-sink leveled logger used by
// scriptbase commands.
//
// A Logger fans every record at or above its threshold out to exactly
// two sinks: an append-only plain-text log file and a colorized
// terminal stream. Thresholding happens once at the Logger; both sinks
// see the same records. Each sink owns its formatter and a mutex, so
// concurrent log calls never interleave partial lines.
//
// # Construction
//
// Loggers are created by name through New. Repeated calls with the same
// Name return the same instance; the later call's MinLevel wins, the
// sink wiring from the first call is kept. The log file name defaults
// to <YYYY-MM-DD_HHMMSS>_<app>.log, and the log directory is created on
// demand (one level deep, never truncating an existing file).
//
// # Levels
//
// Severity names resolve through a severity.Registry, so custom levels
// registered at startup are immediately usable both as a threshold and
// as log targets:
//
//	log, err := logging.New(logging.Config{Dir: "log", Name: "app", MinLevel: "info"})
//	log.Infof("%d files processed", n)
//	log.Namedf("trace", "raw record: %v", rec)
//
// The package also keeps a default logger (SetDefault) with free
// functions mirroring the Logger methods, for the common one-logger
// script case.
package logging
