// Package runner decides and performs the final action for a resolved test
// set: execute the built command, list the files, or print the command.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/testpick/testpick/internal/debug"
	"github.com/testpick/testpick/internal/executor"
)

// ShellRunner executes a shell command string, streaming its output
type ShellRunner interface {
	ShellStreaming(command string, options executor.ExecOptions, stdoutWriter, stderrWriter io.Writer) (*executor.ExecResult, error)
}

// Options are the dispatch-relevant runtime flags
type Options struct {
	// List prints the resolved files one per line instead of executing
	List bool
	// DryRun prints the built command instead of executing
	DryRun bool
}

// Dispatcher routes a resolved file set and built command to its side effect
type Dispatcher struct {
	runner  ShellRunner
	workDir string
	stdout  io.Writer
	stderr  io.Writer
}

// NewDispatcher creates a dispatcher writing to the given streams
func NewDispatcher(runner ShellRunner, workDir string, stdout, stderr io.Writer) *Dispatcher {
	return &Dispatcher{
		runner:  runner,
		workDir: workDir,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Dispatch performs the selected action and returns the process exit code.
// The command is executed only when the file set is non-empty and neither
// list nor dry-run is requested; list and dry-run are independent and may
// both produce output in the same invocation.
func (d *Dispatcher) Dispatch(files []string, command string, opts Options) (int, error) {
	execute := len(files) > 0 && !opts.List && !opts.DryRun

	if opts.List {
		for _, f := range files {
			_, _ = fmt.Fprintln(d.stdout, f)
		}
	}
	if opts.DryRun {
		_, _ = fmt.Fprintln(d.stdout, command)
	}
	if !execute {
		return 0, nil
	}

	debug.LogSection("Test Execution")
	debug.LogCommand(command, d.workDir)

	start := time.Now()
	result, err := d.runner.ShellStreaming(command, executor.ExecOptions{
		WorkingDir: d.workDir,
		InheritEnv: true,
	}, d.stdout, d.stderr)
	debug.LogTiming("test command", time.Since(start))

	if err != nil {
		return 1, err
	}
	if result.Error != nil {
		return 1, result.Error
	}

	// The subprocess exit code is the ground truth for the overall outcome
	debug.Log("Exit code: %d", result.ExitCode)
	return result.ExitCode, nil
}
