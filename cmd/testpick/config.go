package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testpick/testpick/internal/config"
	"github.com/testpick/testpick/internal/wizard"
	pkgconfig "github.com/testpick/testpick/pkg/config"
)

// Config subcommand flags
var (
	validateFlag bool
	initFlag     bool
	forceFlag    bool
)

// configCmd shows, validates, or interactively creates the configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, validate, or create the testpick configuration",
	Long: `Without flags, print the effective configuration after applying the
search paths and built-in defaults.

With --validate, check a configuration file and report problems.
With --init, run the interactive configuration wizard.`,
	Example: `  # Show the effective configuration
  testpick config

  # Validate a specific file
  testpick config --validate --config ./custom.json

  # Create a configuration interactively
  testpick config --init`,
	RunE: runConfigCommand,
}

func init() {
	configCmd.Flags().BoolVar(&validateFlag, "validate", false, "Validate the configuration file")
	configCmd.Flags().BoolVar(&initFlag, "init", false, "Create a configuration interactively")
	configCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing configuration without asking")
}

func runConfigCommand(cmd *cobra.Command, args []string) error {
	if initFlag {
		w, err := wizard.NewConfigWizard()
		if err != nil {
			return err
		}
		return w.Run(configPath, forceFlag)
	}

	if validateFlag {
		path := configPath
		if path == "" {
			path = config.ConfigFileName
		}
		if err := config.ValidateConfigFile(path); err != nil {
			return fmt.Errorf("configuration is invalid: %w", err)
		}
		fmt.Println("Configuration is valid.")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := pkgconfig.SaveConfig(cfg)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
