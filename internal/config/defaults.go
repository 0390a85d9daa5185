// Package config provides default configuration templates for common project types
package config

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/testpick/testpick/pkg/config"
)

// Embedded default configuration files
var (
	//go:embed defaults/ruby.json
	defaultRubyConfig string

	//go:embed defaults/golang.json
	defaultGoConfig string

	//go:embed defaults/python.json
	defaultPythonConfig string

	//go:embed defaults/nodejs.json
	defaultNodeJSConfig string
)

// ProjectType represents a supported project type
type ProjectType string

const (
	// ProjectTypeRuby represents a Ruby project
	ProjectTypeRuby ProjectType = "ruby"

	// ProjectTypeGo represents a Go project
	ProjectTypeGo ProjectType = "go"

	// ProjectTypePython represents a Python project
	ProjectTypePython ProjectType = "python"

	// ProjectTypeNodeJS represents a Node.js project
	ProjectTypeNodeJS ProjectType = "nodejs"

	// ProjectTypeUnknown represents an unknown project type
	ProjectTypeUnknown ProjectType = "unknown"
)

// DefaultConfigs provides access to default configuration templates
type DefaultConfigs struct {
	configs map[ProjectType]*config.Config
}

// NewDefaultConfigs creates a new instance with all default configurations loaded
func NewDefaultConfigs() (*DefaultConfigs, error) {
	dc := &DefaultConfigs{
		configs: make(map[ProjectType]*config.Config),
	}

	// Load all embedded configurations
	configs := map[ProjectType]string{
		ProjectTypeRuby:   defaultRubyConfig,
		ProjectTypeGo:     defaultGoConfig,
		ProjectTypePython: defaultPythonConfig,
		ProjectTypeNodeJS: defaultNodeJSConfig,
	}

	for projectType, configJSON := range configs {
		cfg, err := config.LoadConfig([]byte(configJSON))
		if err != nil {
			return nil, fmt.Errorf("failed to load default config for %s: %w", projectType, err)
		}
		dc.configs[projectType] = cfg
	}

	return dc, nil
}

// GetConfig returns the default configuration for a project type
func (dc *DefaultConfigs) GetConfig(projectType ProjectType) (*config.Config, error) {
	cfg, ok := dc.configs[projectType]
	if !ok {
		return nil, fmt.Errorf("no default configuration for project type: %s", projectType)
	}

	// Return a deep copy to prevent modification of the default
	return cfg.Clone(), nil
}

// GetAllTypes returns all supported project types in stable order
func (dc *DefaultConfigs) GetAllTypes() []ProjectType {
	types := make([]ProjectType, 0, len(dc.configs))
	for t := range dc.configs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
