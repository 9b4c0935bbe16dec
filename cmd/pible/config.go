package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/pible/pkg/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(cfgPath); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", cfgPath)
		}

		c := config.DefaultConfig()
		// Flags given on this invocation end up in the file.
		if cmd.Flags().Changed("translation") {
			c.Translation = cfg.Translation
		}
		if cmd.Flags().Changed("api-key") {
			c.APIKey = cfg.APIKey
		}
		if cmd.Flags().Changed("data-dir") {
			c.DataDir = cfg.DataDir
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if err := c.Save(cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
