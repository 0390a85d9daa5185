// Package config provides configuration loading and management for testpick.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/testpick/testpick/internal/debug"
	"github.com/testpick/testpick/pkg/config"
)

const (
	// ConfigFileName is the default configuration file name
	ConfigFileName = ".testpick.json"

	// ConfigEnvVar is the environment variable to specify custom config path
	ConfigEnvVar = "TESTPICK_CONFIG"
)

// Loader handles locating and loading configuration files
type Loader struct {
	// SearchPaths contains the paths to search for configuration files
	SearchPaths []string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		SearchPaths: getDefaultSearchPaths(),
	}
}

// Load attempts to load configuration from various sources. When no
// configuration file exists anywhere, the built-in defaults are used.
func (l *Loader) Load() (*config.Config, error) {
	debug.LogSection("Configuration Loading")

	// First check if environment variable is set
	if envPath := os.Getenv(ConfigEnvVar); envPath != "" {
		debug.Log("Loading config from environment variable %s: %s", ConfigEnvVar, envPath)
		cfg, err := l.loadFromPath(envPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", ConfigEnvVar, err)
		}
		return cfg, nil
	}

	// Search in default paths
	debug.Log("Searching for config in default paths: %v", l.SearchPaths)
	for _, searchPath := range l.SearchPaths {
		configPath := filepath.Join(searchPath, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			debug.Log("Found config at: %s", configPath)
			cfg, err := l.loadFromPath(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
			return cfg, nil
		}
	}

	debug.Log("No config file found, using built-in defaults")
	return config.Default(), nil
}

// LoadFromPath loads configuration from a specific file path
func (l *Loader) LoadFromPath(path string) (*config.Config, error) {
	return l.loadFromPath(path)
}

// loadFromPath loads and validates configuration from a file
func (l *Loader) loadFromPath(path string) (*config.Config, error) {
	debug.Log("Loading config from file: %s", path)

	// #nosec G304 - path comes from the user's own flag/env/config search
	file, err := os.Open(path)
	if err != nil {
		debug.LogError(err, "opening config file")
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }() //nolint:errcheck // Best effort cleanup

	data, err := io.ReadAll(file)
	if err != nil {
		debug.LogError(err, "reading config file")
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := config.LoadConfig(data)
	if err != nil {
		debug.LogError(err, "parsing config")
		return nil, err
	}

	debug.Log("Loaded config: version=%s, testDir=%s, suffixes=%v",
		cfg.Version, cfg.TestDir, cfg.Suffixes)

	return cfg, nil
}

// getDefaultSearchPaths returns the default paths to search for configuration
func getDefaultSearchPaths() []string {
	paths := []string{}

	// Current working directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)

		// Walk up the directory tree to find root of project
		dir := cwd
		for {
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}

			// Check for common project root indicators
			if _, err := os.Stat(filepath.Join(parent, ".git")); err == nil {
				paths = append(paths, parent)
				break
			}
			if _, err := os.Stat(filepath.Join(parent, "Gemfile")); err == nil {
				paths = append(paths, parent)
				break
			}
			if _, err := os.Stat(filepath.Join(parent, "go.mod")); err == nil {
				paths = append(paths, parent)
				break
			}
			if _, err := os.Stat(filepath.Join(parent, "package.json")); err == nil {
				paths = append(paths, parent)
				break
			}

			dir = parent
		}
	}

	// Home directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}

	return paths
}

// ValidateConfigFile validates a configuration file without using it
func ValidateConfigFile(path string) error {
	// #nosec G304 - path is provided by user for validation purposes
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	_, err = config.LoadConfig(data)
	return err
}
