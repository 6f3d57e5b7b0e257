// Package severity maintains the process-wide table of named logging
// severities used by the logging package.
//
// The built-in levels (DEBUG through CRITICAL) use the classic numeric
// ranks 10..50. The table is open-ended: callers may register extra
// levels at any signed rank, including below DEBUG (ultra-verbose
// tracing) and above CRITICAL (a "never log" sentinel that silences a
// logger entirely).
//
// # Registration
//
// Each level carries a name and a derived accessor (the lowercase name
// unless overridden). Registration is append-only and conflict-checked:
// a name that is already registered, or an accessor that collides with
// either a package-level logging function or a method on the Logger
// type, fails without modifying the table. The three checks fail
// independently so a caller can tell which one collided.
//
// # Usage
//
// A Registry is an ordinary value that can be passed around and tested
// in isolation. The package also keeps a Default registry plus thin
// package-level wrappers, which is what short scripts normally use:
//
//	severity.Register("TRACE", severity.Debug-5)
//	rank, err := severity.Lookup("trace")
package severity
