package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkruger/scriptbase/internal/severity"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// execute runs the run command with the given stdin content and args,
// capturing combined output.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	out := &bytes.Buffer{}
	cmd := GetRunCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// readLogFile returns the content of the single log file under dir.
func readLogFile(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_\d{6}_scriptbase\.log$`), entries[0].Name())

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	return string(content)
}

func TestRunEndToEnd(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "source"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "target"), 0o755))

	out, err := execute(t, "y\n", "-l", "warning")
	require.NoError(t, err)

	assert.Contains(t, out, "All log levels:")
	assert.Contains(t, out, "The END...")

	content := readLogFile(t, filepath.Join(dir, "log"))

	// The level test temporarily lowers the threshold, so even the
	// custom ultra-verbose levels show up once.
	assert.Contains(t, content, "ALL      | All message")
	assert.Contains(t, content, "TRACE    | Trace message")
	assert.Contains(t, content, "CRITICAL | Critical message")

	// The confirmed answer is logged at warning, which passes the
	// restored threshold.
	assert.Contains(t, content, "Answer: Yes")

	// Both directories exist, so no critical diagnostics.
	assert.NotContains(t, content, "doesn't exist")
}

func TestRunContinuesWhenDirsMissing(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	chdir(t, dir)

	// Empty answer resolves to the default (yes).
	out, err := execute(t, "\n", "-l", "critical")
	require.NoError(t, err)
	assert.Contains(t, out, "The END...")

	content := readLogFile(t, filepath.Join(dir, "log"))
	assert.Contains(t, content, "Given source dir")
	assert.Contains(t, content, "Given target dir")
	assert.Contains(t, content, "doesn't exist or is not a directory")
}

func TestRunStrictAbortsOnMissingSource(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source dir")
	assert.NotContains(t, out, "The END...")
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := execute(t, "", "-l", "chatty")
	require.ErrorIs(t, err, severity.ErrInvalidLevelName)
}

func TestRunFlagDefaults(t *testing.T) {
	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	flags := GetRunCmd().Flags()
	for _, tt := range []struct {
		name string
		want string
	}{
		{"source", "source"},
		{"target", "target"},
		{"log-level", "info"},
		{"log-dir", "log"},
	} {
		flag := flags.Lookup(tt.name)
		require.NotNil(t, flag, "flag %s", tt.name)
		assert.Equal(t, tt.want, flag.DefValue, "flag %s", tt.name)
	}
}
