package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkruger/scriptbase/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "scriptbase",
	Short: "Scriptbase - a starter kit for command-line scripts.",
	Long: `Scriptbase is a boilerplate for command-line scripts. It wires together
argument parsing, dual-target logging with custom severity levels, a
terminal progress bar, a yes/no confirmation prompt, and external
command invocation, and demonstrates each of them in the run command.

Usage:
  scriptbase <command> [flags]

Available Commands:
  run        Run the demo script

Run 'scriptbase help <command>' for more details on a specific command.
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Welcome to scriptbase! Run 'scriptbase --help' to see available commands.")
	},
}

func main() {
	rootCmd.AddCommand(cmd.RunCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
