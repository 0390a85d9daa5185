// Package vcs implements git-based change detection for testpick.
package vcs

import (
	"strings"

	"github.com/testpick/testpick/internal/debug"
	"github.com/testpick/testpick/internal/executor"
)

// ShellRunner runs a shell command string and captures its output
type ShellRunner interface {
	Shell(command string, options executor.ExecOptions) (*executor.ExecResult, error)
}

// ChangeDetector queries git for files changed relative to a reference and
// for newly added untracked files, scoped to a set of input paths
type ChangeDetector struct {
	runner  ShellRunner
	workDir string
}

// NewChangeDetector creates a change detector running git in workDir
func NewChangeDetector(runner ShellRunner, workDir string) *ChangeDetector {
	return &ChangeDetector{
		runner:  runner,
		workDir: workDir,
	}
}

// Query builds the combined git command for the given reference and paths.
// An empty reference compares against the default comparison point.
func (d *ChangeDetector) Query(ref string, paths []string) string {
	diff := []string{"git", "diff", "--no-ext-diff", "--name-only"}
	if ref != "" {
		diff = append(diff, ref)
	}
	diff = append(diff, "--")
	diff = append(diff, paths...)

	added := []string{"git", "ls-files", "--others", "--exclude-standard", "--"}
	added = append(added, paths...)

	return strings.Join(diff, " ") + " && " + strings.Join(added, " ")
}

// Changed returns changed-then-added paths scoped to the input paths, without
// deduplication. Any git failure degrades to an empty list; the caller must
// still be able to list or dry-run over an empty changed-file set.
func (d *ChangeDetector) Changed(ref string, paths []string) []string {
	query := d.Query(ref, paths)
	debug.Log("VCS query: %s", query)

	result, err := d.runner.Shell(query, executor.ExecOptions{
		WorkingDir: d.workDir,
		InheritEnv: true,
	})
	if err != nil {
		debug.LogError(err, "running VCS query")
		return nil
	}
	if result.Error != nil {
		debug.LogError(result.Error, "running VCS query")
		return nil
	}
	if result.ExitCode != 0 {
		debug.Log("VCS query exited %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
		return nil
	}

	return splitLines(result.Stdout)
}

func splitLines(output string) []string {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}
