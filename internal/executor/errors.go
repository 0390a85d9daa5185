// Package executor provides subprocess execution functionality for testpick.
package executor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Error types for command execution
var (
	// ErrCommandNotFound indicates the command was not found in PATH
	ErrCommandNotFound = errors.New("command not found")

	// ErrPermissionDenied indicates the command cannot be executed due to permissions
	ErrPermissionDenied = errors.New("permission denied")
)

// ErrorType represents the type of execution error
type ErrorType int

const (
	// ErrorTypeUnknown indicates an unknown error
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeCommandNotFound indicates the command was not found
	ErrorTypeCommandNotFound
	// ErrorTypePermissionDenied indicates permission was denied
	ErrorTypePermissionDenied
	// ErrorTypeExecution indicates general execution error
	ErrorTypeExecution
)

// ExecError represents a detailed execution error
type ExecError struct {
	Type    ErrorType
	Command string
	Err     error
}

// Error implements the error interface
func (e *ExecError) Error() string {
	switch e.Type {
	case ErrorTypeCommandNotFound:
		return fmt.Sprintf("command not found: %s", e.Command)
	case ErrorTypePermissionDenied:
		return fmt.Sprintf("permission denied: %s", e.Command)
	case ErrorTypeExecution:
		return fmt.Sprintf("execution error for %s: %v", e.Command, e.Err)
	default:
		return fmt.Sprintf("unknown error for %s: %v", e.Command, e.Err)
	}
}

// Unwrap returns the underlying error
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ExecError) Is(target error) bool {
	switch target {
	case ErrCommandNotFound:
		return e.Type == ErrorTypeCommandNotFound
	case ErrPermissionDenied:
		return e.Type == ErrorTypePermissionDenied
	}
	return false
}

// ClassifyError analyzes an error and returns a typed ExecError
func ClassifyError(err error, command string) *ExecError {
	if err == nil {
		return nil
	}

	execErr := &ExecError{
		Type:    ErrorTypeUnknown,
		Command: command,
		Err:     err,
	}

	errStr := strings.ToLower(err.Error())

	var osExecErr *exec.Error
	if errors.As(err, &osExecErr) {
		switch {
		case strings.Contains(errStr, "executable file not found"),
			strings.Contains(errStr, "no such file or directory"):
			execErr.Type = ErrorTypeCommandNotFound
			return execErr
		case strings.Contains(errStr, "permission denied"),
			strings.Contains(errStr, "operation not permitted"):
			execErr.Type = ErrorTypePermissionDenied
			return execErr
		}
	}

	switch {
	case strings.Contains(errStr, "permission denied"):
		execErr.Type = ErrorTypePermissionDenied
	case strings.Contains(errStr, "not found"):
		execErr.Type = ErrorTypeCommandNotFound
	default:
		execErr.Type = ErrorTypeExecution
	}

	return execErr
}
