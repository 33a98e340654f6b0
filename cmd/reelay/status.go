package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server status and cache statistics",
	Args:  cobra.NoArgs,
	RunE:  runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	status, err := client.Status()
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	if jsonOutput {
		printJSON(status)
		return nil
	}

	printStatusHuman(serverURL, status)
	return nil
}

func printStatusHuman(server string, s *StatusResponse) {
	state := s.Status
	if shouldColorize(os.Stdout) {
		if state == "ok" {
			state = ansiGreen + state + ansiReset
		} else {
			state = ansiRed + state + ansiReset
		}
	}

	fmt.Printf("Server:     %s (%s)\n", server, state)
	fmt.Printf("Version:    %s\n", s.Version)
	fmt.Println()
	fmt.Println("Cache")
	fmt.Printf("  Movies:     %d\n", s.Cache.Movies)
	fmt.Printf("  Searches:   %d\n", s.Cache.Searches)
	fmt.Printf("  Hits:       %d\n", s.Cache.Hits)
	fmt.Printf("  Misses:     %d\n", s.Cache.Misses)
	if total := s.Cache.Hits + s.Cache.Misses; total > 0 {
		fmt.Printf("  Hit rate:   %.0f%%\n", float64(s.Cache.Hits)/float64(total)*100)
	}
}
