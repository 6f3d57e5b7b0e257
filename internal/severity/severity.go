package severity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Built-in severity ranks. The spacing leaves room for custom levels
// between, below, and above the built-ins.
const (
	Debug    = 10
	Info     = 20
	Warning  = 30
	Error    = 40
	Critical = 50
)

var (
	// ErrDuplicateLevelName is returned when a level name is already registered.
	ErrDuplicateLevelName = errors.New("duplicate level name")

	// ErrDuplicateAccessorName is returned when an accessor name is already
	// taken, either by the package-level logging functions or by a method
	// on the Logger type.
	ErrDuplicateAccessorName = errors.New("duplicate accessor name")

	// ErrInvalidLevelName is returned by lookups of unregistered level names.
	ErrInvalidLevelName = errors.New("invalid level name")
)

// loggerMethods lists the lowercased method names of logging.Logger.
// An accessor may not shadow any of them.
var loggerMethods = map[string]struct{}{
	"logf":      {},
	"namedf":    {},
	"setlevel":  {},
	"level":     {},
	"name":      {},
	"debugf":    {},
	"infof":     {},
	"warningf":  {},
	"errorf":    {},
	"criticalf": {},
}

// Registry is an append-only table of named severity levels. The zero
// value is not usable; construct with NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	ranks     map[string]int // canonical (upper-case) name -> rank
	accessors map[string]int // accessor (lower-case) -> rank
}

// NewRegistry returns a registry seeded with the built-in levels and
// their accessors.
func NewRegistry() *Registry {
	return &Registry{
		ranks: map[string]int{
			"DEBUG":    Debug,
			"INFO":     Info,
			"WARNING":  Warning,
			"ERROR":    Error,
			"CRITICAL": Critical,
		},
		accessors: map[string]int{
			"debug":    Debug,
			"info":     Info,
			"warning":  Warning,
			"error":    Error,
			"critical": Critical,
		},
	}
}

// Register adds a new level under name with the lowercase name as its
// accessor. See RegisterAs.
func (r *Registry) Register(name string, rank int) error {
	return r.RegisterAs(name, rank, strings.ToLower(name))
}

// RegisterAs adds a new level with an explicit accessor name. It fails
// without modifying the registry if the level name is already taken, if
// the accessor is already a package-level accessor, or if the accessor
// would shadow a method on the Logger type. Each condition fails
// independently so the caller can tell which one collided.
func (r *Registry) RegisterAs(name string, rank int, accessor string) error {
	canonical := strings.ToUpper(name)
	accessor = strings.ToLower(accessor)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ranks[canonical]; ok {
		return fmt.Errorf("%w: level %q is already registered", ErrDuplicateLevelName, canonical)
	}
	if _, ok := r.accessors[accessor]; ok {
		return fmt.Errorf("%w: %q is already a package accessor", ErrDuplicateAccessorName, accessor)
	}
	if _, ok := loggerMethods[accessor]; ok {
		return fmt.Errorf("%w: %q is already defined on the logger type", ErrDuplicateAccessorName, accessor)
	}

	r.ranks[canonical] = rank
	r.accessors[accessor] = rank
	return nil
}

// Lookup resolves a level name to its rank, case-insensitively.
func (r *Registry) Lookup(name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rank, ok := r.ranks[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a valid level name", ErrInvalidLevelName, name)
	}
	return rank, nil
}

// AccessorRank resolves an accessor name to its rank. Accessors are the
// Go counterpart of the reference implementation's dynamically injected
// logging methods.
func (r *Registry) AccessorRank(accessor string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rank, ok := r.accessors[strings.ToLower(accessor)]
	if !ok {
		return 0, fmt.Errorf("%w: no accessor named %q", ErrInvalidLevelName, accessor)
	}
	return rank, nil
}

// LevelName returns the registered name for rank, or "Level <rank>" if
// no level is registered at that rank.
func (r *Registry) LevelName(rank int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, n := range r.ranks {
		if n == rank {
			return name
		}
	}
	return fmt.Sprintf("Level %d", rank)
}

// Names returns all registered level names ordered by rank.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ranks))
	for name := range r.ranks {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if r.ranks[names[i]] != r.ranks[names[j]] {
			return r.ranks[names[i]] < r.ranks[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// Default is the process-wide registry used when no explicit registry is
// wired in. Scripts that only ever need one severity table use the
// package-level wrappers below.
var Default = NewRegistry()

// Register adds a level to the Default registry.
func Register(name string, rank int) error {
	return Default.Register(name, rank)
}

// RegisterAs adds a level with an explicit accessor to the Default registry.
func RegisterAs(name string, rank int, accessor string) error {
	return Default.RegisterAs(name, rank, accessor)
}

// Lookup resolves a level name against the Default registry.
func Lookup(name string) (int, error) {
	return Default.Lookup(name)
}

// LevelName resolves a rank to a name against the Default registry.
func LevelName(rank int) string {
	return Default.LevelName(rank)
}
