// Package ui provides colorized text formatting for terminal output.
//
// It centralizes the level-name color table used by the logging
// package's terminal sink, plus a few semantic formatters for status
// glyphs in command output. All formatting honors the NO_COLOR
// convention (https://no-color.org/) and fatih/color's own terminal
// detection, so piped or dumb-terminal output stays plain.
package ui
