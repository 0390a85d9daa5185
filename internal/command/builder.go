// Package command assembles the final test invocation string for testpick.
package command

import (
	"fmt"
	"strings"

	"github.com/testpick/testpick/pkg/config"
)

// BuildOptions carries the runtime-selected values for a single invocation
type BuildOptions struct {
	// Seed is the value assigned to the configured seed env var
	Seed int
	// Parallel is the worker count; zero means unset and is omitted
	Parallel int
	// Verbose selects the verbose base command
	Verbose bool
}

// Builder assembles invocation strings from configuration and a file list
type Builder struct {
	cfg *config.Config
}

// NewBuilder creates a command builder for the given configuration
func NewBuilder(cfg *config.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build concatenates the environment segment, the base command, and the file
// list into one shell invocation string. File paths are not quoted or
// escaped; paths containing spaces or shell metacharacters are a known
// limitation.
func (b *Builder) Build(files []string, opts BuildOptions) string {
	parts := make([]string, 0, 4)

	if b.cfg.Env != "" {
		parts = append(parts, b.cfg.Env)
	}
	parts = append(parts, fmt.Sprintf("%s=%d", b.cfg.SeedEnv, opts.Seed))
	if opts.Parallel > 0 && b.cfg.ParallelEnv != "" {
		parts = append(parts, fmt.Sprintf("%s=%d", b.cfg.ParallelEnv, opts.Parallel))
	}

	parts = append(parts, b.cfg.BaseCommand(opts.Verbose))

	if len(files) > 0 {
		parts = append(parts, strings.Join(files, " "))
	}

	return strings.Join(parts, " ")
}
