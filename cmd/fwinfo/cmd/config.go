package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/fwinfo/pkg/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fwinfo configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file. The journal and catalog are placed
under --data-dir.

Examples:
  fwinfo config init
  fwinfo config init --config ./fwinfo.yaml --data-dir ./data`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.GetDefaultConfigPath()
			}
			dataDir, _ := cmd.Flags().GetString("data-dir")
			force, _ := cmd.Flags().GetBool("force")

			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", configPath)
				return nil
			}

			cfg, err := config.BootstrapConfig(configPath, dataDir)
			if err != nil {
				return err
			}
			container.Logger().Info("configuration written", "path", configPath)
			cmd.Printf("Configuration written to %s\n", configPath)
			cmd.Printf("Journal: %s\n", cfg.Journal.Path)
			cmd.Printf("Catalog: %s\n", cfg.Catalog.Dir)
			return nil
		},
	}
	initCmd.Flags().String("data-dir", "./data", "Directory for the journal and catalog")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")

	configCmd.AddCommand(initCmd)
	return configCmd
}
