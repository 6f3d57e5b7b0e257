package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dkruger/scriptbase/internal/logging"
	"github.com/dkruger/scriptbase/internal/progress"
	"github.com/dkruger/scriptbase/internal/prompt"
	"github.com/dkruger/scriptbase/internal/severity"
	"github.com/dkruger/scriptbase/internal/shell"
	"github.com/dkruger/scriptbase/internal/ui"
)

const (
	loggerName    = "scriptbase"
	logDirDefault = "log"

	// Example step count for the progress bar demo.
	progressSteps = 6
	progressDelay = 250 * time.Millisecond
)

var (
	runSource   string
	runTarget   string
	runUser     string
	runLogLevel string
	runLogDir   string
	runVerbose  bool
	runStrict   bool

	// Logger is the active logger for the run command, set during RunE.
	Logger *logging.Logger
)

// RunCmd demonstrates every building block of the starter kit in order:
// custom log levels, the dual-sink logger, the progress bar, the yes/no
// prompt, and an external command.
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo script",
	Long: `Runs the template script: prints a banner, logs a header block,
validates the source and target directories, exercises every log level,
renders a progress bar, asks a yes/no question, and captures the output
of a directory listing.

By default a failed source/target validation only logs a critical
diagnostic and execution continues; pass --strict to abort instead.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := filepath.Abs(runSource)
		if err != nil {
			return fmt.Errorf("resolving source path: %w", err)
		}
		target, err := filepath.Abs(runTarget)
		if err != nil {
			return fmt.Errorf("resolving target path: %w", err)
		}
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}

		// Severity table and logger wiring must succeed before anything
		// else runs; a half-configured logger cannot be trusted.
		registry := severity.NewRegistry()
		for _, level := range []struct {
			name string
			rank int
		}{
			{"ALL", 1},
			{"TRACE", severity.Debug - 5},
			{"NONE", severity.Critical + 5},
		} {
			if err := registry.Register(level.name, level.rank); err != nil {
				return fmt.Errorf("registering level %s: %w", level.name, err)
			}
		}

		logger, err := logging.New(logging.Config{
			Dir:      runLogDir,
			Name:     loggerName,
			MinLevel: runLogLevel,
			Registry: registry,
		})
		if err != nil {
			return err
		}
		Logger = logger
		logging.SetDefault(logger)

		printBanner(cmd)

		logger.Infof("------------------------------==========  scriptbase  ==========-----------------------------")
		logger.Infof("Date Time      : %s", time.Now().Format("2006-01-02 15:04:05"))
		logger.Infof("User name      : %s", runUser)
		logger.Infof("Working dir    : %s", cwd)
		logger.Infof("Source dir     : %s", source)
		logger.Infof("Target dir     : %s", target)
		logger.Infof("Log level      : %s", registry.LevelName(logger.Level()))
		logger.Infof("Verbose mode   : %t", runVerbose)
		logger.Infof("---------------------------------------------------------------------------------------------")

		if err := validateDir(logger, "source", source); err != nil {
			return err
		}
		if err := validateDir(logger, "target", target); err != nil {
			return err
		}

		logger.Infof("- Action 1: Test all log levels -------------------------------------------------------------")
		if err := demoAllLevels(cmd, logger, registry); err != nil {
			return err
		}

		logger.Infof("- Action 2: Progress bar --------------------------------------------------------------------")
		if err := demoProgressBar(logger); err != nil {
			return err
		}
		if runVerbose {
			logger.Infof("  - Verbose text")
		}

		logger.Infof("- Action 3: Yes / No question ---------------------------------------------------------------")
		answer, err := prompt.Ask(cmd.InOrStdin(), cmd.OutOrStdout(), "  Question with a yes/no answer?", prompt.DefaultYes)
		switch {
		case err != nil:
			logger.Errorf("  - Failed to read an answer: %v", err)
		case answer:
			logger.Warningf("  - Answer: Yes")
		default:
			logger.Criticalf("  - Answer: No")
		}

		logger.Infof("- Action 4: Command line action -------------------------------------------------------------")
		demoListDir(logger, cwd)

		fmt.Fprintln(cmd.OutOrStdout(), "The END...")
		return nil
	},
}

func init() {
	RunCmd.Flags().StringVarP(&runSource, "source", "s", "source", "source directory")
	RunCmd.Flags().StringVarP(&runTarget, "target", "t", "target", "target directory")
	RunCmd.Flags().StringVarP(&runUser, "user", "u", os.Getenv("USERNAME"), "user who runs this script")
	RunCmd.Flags().StringVarP(&runLogLevel, "log-level", "l", "info", "minimum severity to log (any registered level name)")
	RunCmd.Flags().StringVar(&runLogDir, "log-dir", logDirDefault, "directory for log files")
	RunCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "enable verbose output")
	RunCmd.Flags().BoolVar(&runStrict, "strict", false, "abort when source/target validation fails")
}

// printBanner renders the ASCII art banner, skipping the figlet output
// when stdout is redirected away from the command's writer (tests).
func printBanner(cmd *cobra.Command) {
	if cmd.OutOrStdout() != os.Stdout {
		return
	}
	fmt.Println()
	banner := figure.NewColorFigure("scriptbase", "", "green", true)
	banner.Print()
	fmt.Println()
}

// validateDir logs a critical diagnostic when path is not an existing
// directory. Execution continues unless --strict was given.
func validateDir(logger *logging.Logger, label, path string) error {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil
	}
	logger.Criticalf("Given %s dir '%s' doesn't exist or is not a directory...", label, path)
	if runStrict {
		return fmt.Errorf("%s dir %s is not a directory", label, path)
	}
	return nil
}

// demoAllLevels temporarily drops the threshold to the lowest rank,
// emits one record per registered level, and restores the threshold.
func demoAllLevels(cmd *cobra.Command, logger *logging.Logger, registry *severity.Registry) error {
	saved := logger.Level()
	allRank, err := registry.Lookup("ALL")
	if err != nil {
		return err
	}
	logger.SetLevel(allRank)
	defer logger.SetLevel(saved)

	fmt.Fprintf(cmd.OutOrStdout(), "All log levels: %v\n", registry.Names())

	if err := logger.Namedf("all", "All message"); err != nil {
		return err
	}
	if err := logger.Namedf("trace", "Trace message"); err != nil {
		return err
	}
	logger.Debugf("Debug message")
	logger.Infof("Info message")
	logger.Warningf("Warning message")
	logger.Errorf("Error message")
	logger.Criticalf("Critical message")
	return logger.Namedf("none", "None message")
}

// demoProgressBar walks the bar from empty to full with a short pause
// per step.
func demoProgressBar(logger *logging.Logger) error {
	bar, err := progress.NewBar(progressSteps)
	if err != nil {
		return err
	}
	for i := 0; i <= bar.Total; i++ {
		if err := bar.Render(i); err != nil {
			return err
		}
		time.Sleep(progressDelay)
	}
	logger.Debugf("Latest Idx: %d", bar.Total)
	return nil
}

// demoListDir captures a directory listing under a spinner and logs it.
// A failing command is logged and execution continues.
func demoListDir(logger *logging.Logger, dir string) {
	s, cleanup := startSpinner("Listing working directory...", runVerbose)
	output, err := shell.ListDir(dir)
	if err != nil {
		s.FinalMSG = ui.Error.Sprint("✗") + " Directory listing failed"
		cleanup()
		logger.Errorf("  - Directory listing failed: %v", err)
		return
	}
	s.FinalMSG = ui.Success.Sprint("✓") + " Directory listing captured"
	cleanup()
	logger.Infof("  - ls -al:\n%s", output)
}

// Helper functions for testing

// GetRunCmd returns the RunCmd for testing.
func GetRunCmd() *cobra.Command {
	return RunCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	runSource = "source"
	runTarget = "target"
	runUser = os.Getenv("USERNAME")
	runLogLevel = "info"
	runLogDir = logDirDefault
	runVerbose = false
	runStrict = false
	Logger = nil
	logging.Reset()

	// Reset Cobra flag state to prevent pollution between tests.
	RunCmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}
