// Package executor provides subprocess execution functionality for testpick.
package executor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExecOptions defines options for command execution
type ExecOptions struct {
	// Working directory for the command
	WorkingDir string
	// Environment variables (in KEY=VALUE format)
	Environment []string
	// Whether to inherit parent process environment
	InheritEnv bool
}

// ExecResult contains the result of command execution
type ExecResult struct {
	// Standard output from the command
	Stdout string
	// Standard error from the command
	Stderr string
	// Exit code of the command
	ExitCode int
	// Error if command failed to start
	Error error
}

// CommandExecutor runs shell command strings synchronously
type CommandExecutor struct {
	// Shell used to interpret command strings
	shell string
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{shell: "sh"}
}

// Shell runs a command string through the shell and captures its output
func (e *CommandExecutor) Shell(command string, options ExecOptions) (*ExecResult, error) {
	var stdoutBuf, stderrBuf bytes.Buffer
	result, err := e.run(command, options, &stdoutBuf, &stderrBuf)
	if result != nil {
		result.Stdout = stdoutBuf.String()
		result.Stderr = stderrBuf.String()
	}
	return result, err
}

// ShellStreaming runs a command string through the shell, streaming output
// to the provided writers as it is produced
func (e *CommandExecutor) ShellStreaming(command string, options ExecOptions, stdoutWriter, stderrWriter io.Writer) (*ExecResult, error) {
	if stdoutWriter == nil {
		stdoutWriter = io.Discard
	}
	if stderrWriter == nil {
		stderrWriter = io.Discard
	}
	return e.run(command, options, stdoutWriter, stderrWriter)
}

// run executes the command and waits for completion. The subprocess exit
// code is reported in the result, never as an error.
func (e *CommandExecutor) run(command string, options ExecOptions, stdout, stderr io.Writer) (*ExecResult, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("command cannot be empty")
	}

	// #nosec G204 - the command string is assembled from the user's own config and arguments
	cmd := exec.Command(e.shell, "-c", command)

	// Set working directory
	if options.WorkingDir != "" {
		absPath, err := filepath.Abs(options.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("invalid working directory: %w", err)
		}
		if _, err := os.Stat(absPath); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("invalid working directory: %s does not exist", absPath)
			}
			return nil, fmt.Errorf("invalid working directory: %w", err)
		}
		cmd.Dir = absPath
	}

	// Set environment
	env := e.prepareEnvironment(options)
	if len(env) > 0 {
		cmd.Env = env
	}

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		execErr := ClassifyError(err, command)
		return &ExecResult{
			ExitCode: -1,
			Error:    execErr,
		}, nil
	}

	waitErr := cmd.Wait()

	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			// Command failed to run properly
			return &ExecResult{
				ExitCode: -1,
				Error:    waitErr,
			}, nil
		}
	}

	return &ExecResult{ExitCode: exitCode}, nil
}

// prepareEnvironment prepares the environment variables for the command
func (e *CommandExecutor) prepareEnvironment(options ExecOptions) []string {
	var env []string

	// Start with parent environment if requested
	if options.InheritEnv {
		env = os.Environ()
	}

	// Create a map for efficient lookup and override
	envMap := make(map[string]string)
	for _, entry := range env {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}

	// Add/override with provided environment variables
	for _, entry := range options.Environment {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}

	// Convert back to slice
	env = make([]string, 0, len(envMap))
	for k, v := range envMap {
		env = append(env, k+"="+v)
	}

	return env
}
