// Package config provides the core configuration types and validation logic for testpick.
package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Config represents the main configuration structure for testpick
type Config struct {
	Version     string `json:"version"`
	ProjectType string `json:"projectType,omitempty"`

	// TestDir is the directory resolved when no path arguments are given
	TestDir string `json:"testDir"`

	// Suffixes are the filename endings that identify a test file
	Suffixes []string `json:"suffixes"`

	// Command is the base test command; VerboseCommand is used with --verbose
	Command        string `json:"command"`
	VerboseCommand string `json:"verboseCommand,omitempty"`

	// SeedEnv and ParallelEnv name the environment variables prepended
	// to the command for the seed and worker count
	SeedEnv     string `json:"seedEnv"`
	ParallelEnv string `json:"parallelEnv,omitempty"`

	// Env is a static environment segment prepended verbatim (e.g. "RAILS_ENV=test")
	Env string `json:"env,omitempty"`
}

// Default returns the built-in configuration used when no config file is found
func Default() *Config {
	return &Config{
		Version:        "1.0",
		TestDir:        "test",
		Suffixes:       []string{"_test.rb"},
		Command:        "rake test",
		VerboseCommand: "rake test TESTOPTS=--verbose",
		SeedEnv:        "SEED",
		ParallelEnv:    "PARALLEL_WORKERS",
	}
}

// Validate performs validation on the Config
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}

	if c.TestDir == "" {
		return fmt.Errorf("testDir is required")
	}

	if len(c.Suffixes) == 0 {
		return fmt.Errorf("at least one test-file suffix is required")
	}
	for i, suffix := range c.Suffixes {
		if suffix == "" {
			return fmt.Errorf("suffix %d: suffix must not be empty", i)
		}
	}

	if c.Command == "" {
		return fmt.Errorf("command is required")
	}

	if c.SeedEnv == "" {
		return fmt.Errorf("seedEnv is required")
	}

	return nil
}

// MatchesSuffix reports whether path ends with any configured test-file suffix
func (c *Config) MatchesSuffix(path string) bool {
	for _, suffix := range c.Suffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// BaseCommand returns the command for the given verbosity. An empty
// VerboseCommand falls back to Command.
func (c *Config) BaseCommand(verbose bool) string {
	if verbose && c.VerboseCommand != "" {
		return c.VerboseCommand
	}
	return c.Command
}

// LoadConfig loads a configuration from JSON data
func LoadConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig serializes a configuration to JSON
func SaveConfig(config *Config) ([]byte, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

// Clone creates a deep copy of the Config
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	if c.Suffixes != nil {
		clone.Suffixes = make([]string, len(c.Suffixes))
		copy(clone.Suffixes, c.Suffixes)
	}

	return &clone
}
