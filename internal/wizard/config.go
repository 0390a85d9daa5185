// Package wizard provides the interactive configuration wizard for testpick
package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/testpick/testpick/internal/config"
	"github.com/testpick/testpick/internal/debug"
	"github.com/testpick/testpick/internal/detector"
	pkgconfig "github.com/testpick/testpick/pkg/config"
)

// customTypeOption is offered alongside detected project types
const customTypeOption = "custom (start from the generic template)"

// ConfigWizard provides an interactive configuration wizard
type ConfigWizard struct {
	projectDetector *detector.ProjectDetector
	defaults        *config.DefaultConfigs
}

// NewConfigWizard creates a new configuration wizard
func NewConfigWizard() (*ConfigWizard, error) {
	defaults, err := config.NewDefaultConfigs()
	if err != nil {
		return nil, fmt.Errorf("failed to load default configs: %w", err)
	}

	return &ConfigWizard{
		projectDetector: detector.New(),
		defaults:        defaults,
	}, nil
}

// Run runs the interactive configuration wizard
func (w *ConfigWizard) Run(outputPath string, force bool) error {
	debug.LogSection("Configuration Wizard")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the configuration wizard requires an interactive terminal")
	}

	outputPath, err := determineOutputPath(outputPath)
	if err != nil {
		return err
	}

	// Check if configuration already exists
	if !force {
		overwrite, err := w.checkExistingConfig(outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Configuration wizard canceled.")
			return nil
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	detected, err := w.projectDetector.Detect(cwd)
	if err != nil {
		return fmt.Errorf("failed to detect project type: %w", err)
	}

	cfg, err := w.chooseTemplate(detected)
	if err != nil {
		return err
	}

	customize := false
	if err := survey.AskOne(&survey.Confirm{
		Message: "Customize the configuration field by field?",
		Default: false,
	}, &customize); err != nil {
		return err
	}
	if customize {
		if err := w.customize(cfg); err != nil {
			return err
		}
	}

	return w.validateAndSave(cfg, outputPath)
}

// chooseTemplate selects a starting configuration from the detected types
func (w *ConfigWizard) chooseTemplate(detected []detector.ProjectType) (*pkgconfig.Config, error) {
	options := typeOptions(detected, w.defaults.GetAllTypes())

	var choice string
	if err := survey.AskOne(&survey.Select{
		Message: "Project type:",
		Options: options,
	}, &choice); err != nil {
		return nil, err
	}

	if choice == customTypeOption {
		return pkgconfig.Default(), nil
	}

	cfg, err := w.defaults.GetConfig(config.ProjectType(choice))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// typeOptions lists selectable project types, detected ones first
func typeOptions(detected []detector.ProjectType, all []config.ProjectType) []string {
	seen := make(map[string]bool)
	var options []string

	for _, d := range detected {
		options = append(options, d.Name)
		seen[d.Name] = true
	}
	for _, t := range all {
		if !seen[string(t)] {
			options = append(options, string(t))
		}
	}

	return append(options, customTypeOption)
}

// customize walks the user through every configurable field
func (w *ConfigWizard) customize(cfg *pkgconfig.Config) error {
	questions := []struct {
		message string
		target  *string
	}{
		{"Test directory (used when no paths are given):", &cfg.TestDir},
		{"Test command:", &cfg.Command},
		{"Verbose test command:", &cfg.VerboseCommand},
		{"Seed environment variable name:", &cfg.SeedEnv},
		{"Parallel-workers environment variable name:", &cfg.ParallelEnv},
		{"Static environment string (prepended verbatim):", &cfg.Env},
	}

	for _, q := range questions {
		if err := survey.AskOne(&survey.Input{
			Message: q.message,
			Default: *q.target,
		}, q.target); err != nil {
			return err
		}
	}

	suffixes := strings.Join(cfg.Suffixes, ", ")
	if err := survey.AskOne(&survey.Input{
		Message: "Test-file suffixes (comma separated):",
		Default: suffixes,
	}, &suffixes); err != nil {
		return err
	}
	cfg.Suffixes = parseSuffixes(suffixes)

	return nil
}

// parseSuffixes splits a comma-separated suffix list, dropping empty entries
func parseSuffixes(input string) []string {
	var suffixes []string
	for _, s := range strings.Split(input, ",") {
		if s = strings.TrimSpace(s); s != "" {
			suffixes = append(suffixes, s)
		}
	}
	return suffixes
}

// checkExistingConfig asks whether an existing file should be overwritten
func (w *ConfigWizard) checkExistingConfig(outputPath string) (bool, error) {
	if _, err := os.Stat(outputPath); err != nil {
		return true, nil
	}

	overwrite := false
	err := survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite?", outputPath),
		Default: false,
	}, &overwrite)
	return overwrite, err
}

// validateAndSave validates the configuration and writes it to disk
func (w *ConfigWizard) validateAndSave(cfg *pkgconfig.Config, outputPath string) error {
	data, err := pkgconfig.SaveConfig(cfg)
	if err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", outputPath)
	return nil
}

// determineOutputPath resolves the destination for the new configuration file
func determineOutputPath(outputPath string) (string, error) {
	if outputPath != "" {
		return outputPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	return filepath.Join(cwd, config.ConfigFileName), nil
}
