package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search for movies",
	Long: `Search TMDB for movies by title.

Examples:
  reelay search "The Matrix"
  reelay search the matrix --limit 5
  reelay search inception --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntP("limit", "n", 0, "Show at most N results")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")

	client := NewClient(serverURL)
	results, err := client.Search(query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if jsonOutput {
		printJSON(results)
		return nil
	}

	if len(results.Results) == 0 {
		fmt.Println("No movies found")
		return nil
	}

	printSearchHuman(results, limit)
	return nil
}

func printSearchHuman(r *SearchResponse, limit int) {
	items := r.Results
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			strconv.FormatInt(m.MovieID, 10),
			m.Title,
			releaseYear(m.ReleaseDate),
			fmt.Sprintf("%.1f", m.Rating),
		})
	}

	fmt.Printf("Showing %d of %d movies for %q:\n", len(items), r.TotalResults, r.Query)
	fmt.Println(renderTable(
		[]string{"ID", "Title", "Year", "Rating"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	))
}
