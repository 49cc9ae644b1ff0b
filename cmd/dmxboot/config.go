package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stagelight/go-dmxboot/config"
)

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write dmxboot.yaml with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(v); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s/dmxboot.yaml\n", configDir)
		return nil
	},
}
