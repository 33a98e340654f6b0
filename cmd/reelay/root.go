package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "reelay",
	Short: "CLI client for the reelay metadata proxy",
	Long: `reelay - CLI client for the reelay movie metadata proxy

Look up movie details and search TMDB through a running reelay server.
Repeated lookups are answered from the server's in-memory cache.

Run 'reelayd' to start the server daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("reelay {{.Version}}\n")
}
