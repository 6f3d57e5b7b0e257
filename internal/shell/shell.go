// Package shell runs external commands and captures their output.
package shell

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrCommandExecution is returned when an external command cannot be
// started or exits non-zero.
var ErrCommandExecution = errors.New("command execution failed")

// Run executes name with args in dir and returns its stdout as UTF-8
// text. On a non-zero exit the captured stderr is folded into the error.
func Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%w: %s: %v: %s", ErrCommandExecution, name, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%w: %s: %v", ErrCommandExecution, name, err)
	}
	return string(output), nil
}

// ListDir returns a long-form directory listing of dir using the
// platform's native tool.
func ListDir(dir string) (string, error) {
	if runtime.GOOS == "windows" {
		return Run(dir, "cmd", "/c", "dir")
	}
	return Run(dir, "ls", "-al")
}
