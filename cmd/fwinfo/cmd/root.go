/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/config"
	"github.com/ssargent/fwinfo/pkg/di"
	"github.com/ssargent/fwinfo/pkg/export"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fwinfo",
		Short: "fwinfo - firmware information records",
		Long: `fwinfo builds, inspects and stores the variable-length information
records firmware file protocols exchange: file info, filesystem info and
volume labels, each a fixed header followed by a UCS-2 name.`,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("format", "o", "", "Output format: yaml, json, msgpack")

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newCStr16Cmd(),
		newCStr8Cmd(),
		newGUIDCmd(),
		newJournalCmd(),
		newCatalogCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if container != nil {
			_ = container.Close()
		}
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	if container == nil {
		return fmt.Errorf("dependency container not initialized")
	}

	configPath, _ := cmd.Flags().GetString("config")
	explicit := configPath != ""
	if !explicit {
		configPath = config.GetDefaultConfigPath()
	}

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else if explicit && cmd.Name() != "init" {
		return fmt.Errorf("config file does not exist: %s", configPath)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Output.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Logging.Level))); err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	container.Configure(cfg, logger)

	logger.Debug("configuration loaded", "path", configPath, "found", config.ConfigExists(configPath))
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	return container.Close()
}

// outputFormat returns the configured summary format
func outputFormat() (export.Format, error) {
	return export.ParseFormat(container.Config().Output.Format)
}
