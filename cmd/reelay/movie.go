package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var movieCmd = &cobra.Command{
	Use:   "movie <movie-id>",
	Short: "Show movie details",
	Long: `Look up a movie by its TMDB ID.

Examples:
  reelay movie 24428
  reelay movie 24428 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runMovieCmd,
}

func init() {
	rootCmd.AddCommand(movieCmd)
}

func runMovieCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid movie ID: %s", args[0])
	}

	client := NewClient(serverURL)
	movie, err := client.Movie(id)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if jsonOutput {
		printJSON(movie)
		return nil
	}

	printMovieHuman(movie)
	return nil
}

func printMovieHuman(m *MovieResponse) {
	fmt.Printf("%s (%s)\n\n", m.Title, releaseYear(m.ReleaseDate))
	fmt.Printf("  ID:        %d\n", m.MovieID)
	fmt.Printf("  Released:  %s\n", releaseDateOrDash(m.ReleaseDate))
	fmt.Printf("  Rating:    %.1f/10\n", m.Rating)
	if m.Summary != "" {
		fmt.Printf("  Summary:   %s\n", m.Summary)
	}
	fmt.Printf("\nFetched in %.2fms\n", m.DurationMS)
}

func releaseDateOrDash(date *string) string {
	if date == nil || *date == "" {
		return "-"
	}
	return *date
}

func releaseYear(date *string) string {
	if date == nil || len(*date) < 4 {
		return "-"
	}
	return (*date)[:4]
}
