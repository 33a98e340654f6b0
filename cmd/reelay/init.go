package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reelay/reelay/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config.toml.

The generated file reads TMDB_API_KEY from the environment at server
startup, so no secrets land on disk.

Examples:
  reelay init
  reelay init --path ~/.config/reelay/config.toml`,
	Args: cobra.NoArgs,
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().String("path", "config.toml", "Where to write the config")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("path")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Set TMDB_API_KEY in your environment (or a .env file) and run 'reelayd'.")
	return nil
}
