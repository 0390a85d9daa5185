// Package main is the entry point for the testpick CLI tool.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/testpick/testpick/internal/debug"
)

// Version is set at build time via ldflags
var Version = "dev"

// Global flags
var (
	debugFlag  bool
	configPath string
)

// Run flags
var (
	changedFlag  bool
	changedRef   string
	seedFlag     int
	parallelFlag int
	verboseFlag  bool
	dryRunFlag   bool
	listFlag     bool
)

// newRootCmd creates and returns the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testpick [paths...]",
		Short: "Select and run test files",
		Long: `Testpick resolves path arguments into a set of test files and runs the
configured test command over them.

Each path argument is either a prefix (a directory or filename stem, expanded
by globbing against the configured test-file suffixes) or a single test of the
form path:line, which is passed through verbatim. With no arguments the
configured test directory is used.

With --changed, resolution is restricted to files git reports as changed or
newly added, scoped to the given paths.

The command is assembled as <env> <seed-var>=<seed> [<parallel-var>=<n>]
<test command> <files...> and executed through the shell; its exit code
becomes testpick's exit code.`,
		Version: Version,
		Example: `  # Run every test under the configured test directory
  testpick

  # Run all tests under one directory
  testpick test/models

  # Run a single test by file and line
  testpick test/models/user_test.rb:42

  # Run only tests changed since main
  testpick --changed --ref main

  # Show what would run without running it
  testpick -n test/models
  testpick -l test/models`,
		RunE: runPickCommand,
	}

	// Global flags
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")

	cmd.Flags().BoolVarP(&changedFlag, "changed", "c", false, "Only run tests git reports as changed or added")
	cmd.Flags().StringVar(&changedRef, "ref", "", "Git reference to diff against with --changed")
	cmd.Flags().IntVar(&seedFlag, "seed", -1, "Seed exported to the test command (random when unset)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 0, "Worker count exported to the test command")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Use the verbose test command")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Print the built command instead of running it")
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "Print the resolved test files instead of running them")

	// Disable the default completion command
	cmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	cmd.AddCommand(configCmd)

	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func main() {
	// Parse global flags early to enable debug logging
	for _, arg := range os.Args[1:] {
		if arg == "--debug" {
			debug.Enable()
			break
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// pickSeed returns the flag value, or a random seed when the flag is unset so
// a failing ordering can be reproduced by copying the printed assignment
func pickSeed(flag int) int {
	if flag >= 0 {
		return flag
	}
	return rand.Intn(1 << 16) // #nosec G404 - test-ordering seed, not cryptographic material
}
