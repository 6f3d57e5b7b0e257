package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/dkruger/scriptbase/internal/severity"
)

// DefaultApp is the application name used in derived log file names
// when Config.App is empty.
const DefaultApp = "scriptbase"

// ErrDirectoryCreation is returned when the log directory cannot be
// created, e.g. because its parent path does not exist.
var ErrDirectoryCreation = errors.New("cannot create log directory")

// Config describes a logger to construct or retrieve.
type Config struct {
	// Dir is the log directory, created on demand (one level deep).
	// Empty means the current working directory.
	Dir string

	// Filename overrides the derived <timestamp>_<app>.log name.
	Filename string

	// App is the application name used in the derived file name.
	// Empty means DefaultApp.
	App string

	// Name identifies the logger instance. Construction is idempotent
	// by name.
	Name string

	// MinLevel is the threshold severity, either a level name matched
	// case-insensitively against the registry or a numeric rank.
	MinLevel string

	// Registry resolves level names. Nil means severity.Default.
	Registry *severity.Registry
}

// Logger fans records above its threshold out to a file sink and a
// terminal sink.
type Logger struct {
	name     string
	registry *severity.Registry

	mu      sync.Mutex
	minRank int

	sinks []*sink
}

var (
	namedMu sync.Mutex
	named   = make(map[string]*Logger)
)

// New constructs a logger, or retrieves the instance previously
// constructed under cfg.Name. On retrieval the sinks are left untouched
// and only the threshold is updated, so the last call's MinLevel wins.
func New(cfg Config) (*Logger, error) {
	registry := cfg.Registry
	if registry == nil {
		registry = severity.Default
	}
	rank, err := registry.Lookup(cfg.MinLevel)
	if err != nil {
		// A bare rank is accepted too, matching setLevel semantics.
		n, convErr := strconv.Atoi(cfg.MinLevel)
		if convErr != nil {
			return nil, err
		}
		rank = n
	}

	namedMu.Lock()
	defer namedMu.Unlock()

	if l, ok := named[cfg.Name]; ok {
		l.SetLevel(rank)
		return l, nil
	}

	path, err := logFilePath(cfg)
	if err != nil {
		return nil, err
	}
	// Append-only: an existing file from an earlier run is never truncated.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	l := &Logger{
		name:     cfg.Name,
		registry: registry,
		minRank:  rank,
		sinks:    []*sink{newFileSink(f), newTerminalSink(os.Stdout)},
	}
	named[cfg.Name] = l
	return l, nil
}

// logFilePath derives the log file path, creating the log directory if
// needed.
func logFilePath(cfg Config) (string, error) {
	file := cfg.Filename
	if file == "" {
		app := cfg.App
		if app == "" {
			app = DefaultApp
		}
		file = time.Now().Format("2006-01-02_150405") + "_" + app + ".log"
	}
	if cfg.Dir == "" {
		return file, nil
	}

	info, err := os.Stat(cfg.Dir)
	switch {
	case err == nil && info.IsDir():
		// Reuse the existing directory.
	case err == nil:
		return "", fmt.Errorf("%w: %s exists and is not a directory", ErrDirectoryCreation, cfg.Dir)
	case os.IsNotExist(err):
		// Single-level creation: a missing parent is an error, not
		// something to paper over with MkdirAll.
		if mkErr := os.Mkdir(cfg.Dir, 0o755); mkErr != nil {
			return "", fmt.Errorf("%w: %v", ErrDirectoryCreation, mkErr)
		}
	default:
		return "", fmt.Errorf("%w: %v", ErrDirectoryCreation, err)
	}
	return filepath.Join(cfg.Dir, file), nil
}

// Name returns the logger's instance name.
func (l *Logger) Name() string {
	return l.name
}

// SetLevel changes the threshold rank. Records below it are dropped.
func (l *Logger) SetLevel(rank int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minRank = rank
}

// Level returns the current threshold rank.
func (l *Logger) Level() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minRank
}

// Logf is the generic entry point: it formats the message and delivers
// it to every sink if rank passes the threshold.
func (l *Logger) Logf(rank int, format string, args ...any) {
	if rank < l.Level() {
		return
	}
	now := time.Now()
	level := l.registry.LevelName(rank)
	msg := fmt.Sprintf(format, args...)
	for _, s := range l.sinks {
		s.write(now, level, msg)
	}
}

// Namedf logs through a registered accessor, the stand-in for custom
// level methods. It fails if the accessor is unknown.
func (l *Logger) Namedf(accessor, format string, args ...any) error {
	rank, err := l.registry.AccessorRank(accessor)
	if err != nil {
		return err
	}
	l.Logf(rank, format, args...)
	return nil
}

// Debugf logs a formatted message at DEBUG.
func (l *Logger) Debugf(format string, args ...any) {
	l.Logf(severity.Debug, format, args...)
}

// Infof logs a formatted message at INFO.
func (l *Logger) Infof(format string, args ...any) {
	l.Logf(severity.Info, format, args...)
}

// Warningf logs a formatted message at WARNING.
func (l *Logger) Warningf(format string, args ...any) {
	l.Logf(severity.Warning, format, args...)
}

// Errorf logs a formatted message at ERROR.
func (l *Logger) Errorf(format string, args ...any) {
	l.Logf(severity.Error, format, args...)
}

// Criticalf logs a formatted message at CRITICAL.
func (l *Logger) Criticalf(format string, args ...any) {
	l.Logf(severity.Critical, format, args...)
}

var (
	defaultMu sync.RWMutex
	std       *Logger
)

// SetDefault installs l as the logger behind the package-level logging
// functions.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	std = l
}

func defaultLogger() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return std
}

// Debugf logs at DEBUG through the default logger, if one is set.
func Debugf(format string, args ...any) {
	if l := defaultLogger(); l != nil {
		l.Debugf(format, args...)
	}
}

// Infof logs at INFO through the default logger, if one is set.
func Infof(format string, args ...any) {
	if l := defaultLogger(); l != nil {
		l.Infof(format, args...)
	}
}

// Warningf logs at WARNING through the default logger, if one is set.
func Warningf(format string, args ...any) {
	if l := defaultLogger(); l != nil {
		l.Warningf(format, args...)
	}
}

// Errorf logs at ERROR through the default logger, if one is set.
func Errorf(format string, args ...any) {
	if l := defaultLogger(); l != nil {
		l.Errorf(format, args...)
	}
}

// Criticalf logs at CRITICAL through the default logger, if one is set.
func Criticalf(format string, args ...any) {
	if l := defaultLogger(); l != nil {
		l.Criticalf(format, args...)
	}
}

// Namedf logs through a registered accessor on the default logger, if
// one is set.
func Namedf(accessor, format string, args ...any) error {
	if l := defaultLogger(); l != nil {
		return l.Namedf(accessor, format, args...)
	}
	return nil
}

// Reset clears the named-logger cache and the default logger so tests
// can construct fresh instances.
func Reset() {
	namedMu.Lock()
	named = make(map[string]*Logger)
	namedMu.Unlock()
	SetDefault(nil)
}
