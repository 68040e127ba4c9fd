package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocmark/internal/config"
	"github.com/jackzampolin/tocmark/internal/home"
	"github.com/jackzampolin/tocmark/internal/output"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tocmark configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		path := h.ConfigPath()
		if !configInitForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svcs, err := setupServices(cmd.Context())
		if err != nil {
			return err
		}
		return output.Output(svcs.Config.Get())
	},
}

func init() {
	configInitCmd.Flags().BoolVar(
		&configInitForce, "force", false, "overwrite an existing config file",
	)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
