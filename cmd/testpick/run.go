package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/testpick/testpick/internal/command"
	"github.com/testpick/testpick/internal/config"
	"github.com/testpick/testpick/internal/debug"
	"github.com/testpick/testpick/internal/executor"
	"github.com/testpick/testpick/internal/resolver"
	"github.com/testpick/testpick/internal/runner"
	"github.com/testpick/testpick/internal/vcs"
	pkgconfig "github.com/testpick/testpick/pkg/config"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

func runPickCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	return runPick(cfg, cwd, args)
}

// loadConfig loads configuration from the --config flag or the search paths
func loadConfig() (*pkgconfig.Config, error) {
	loader := config.NewLoader()
	if configPath != "" {
		cfg, err := loader.LoadFromPath(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// runPick resolves test files, builds the invocation, and dispatches it
func runPick(cfg *pkgconfig.Config, workDir string, paths []string) error {
	start := time.Now()
	debug.LogSection("Test Selection")
	debug.Log("Paths: %v", paths)

	shell := executor.NewCommandExecutor()
	res := resolver.New(cfg, workDir)

	var files []string
	if changedFlag {
		det := vcs.NewChangeDetector(shell, workDir)
		files = res.ResolveChanged(det, changedRef, paths)
	} else {
		files = res.Resolve(paths)
	}

	built := command.NewBuilder(cfg).Build(files, command.BuildOptions{
		Seed:     pickSeed(seedFlag),
		Parallel: parallelFlag,
		Verbose:  verboseFlag,
	})

	dispatcher := runner.NewDispatcher(shell, workDir, os.Stdout, os.Stderr)
	exitCode, err := dispatcher.Dispatch(files, built, runner.Options{
		List:   listFlag,
		DryRun: dryRunFlag,
	})
	debug.LogTiming("total", time.Since(start))
	if err != nil {
		return err
	}

	if exitCode != 0 {
		osExit(exitCode)
	}
	return nil
}
