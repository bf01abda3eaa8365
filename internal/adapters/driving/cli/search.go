package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search places from the command line",
	Long: `Performs a one-shot ranked search across all place tiers.
Matches exact names first, then prefixes, substrings, word tokens and
finally fuzzy character overlap.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchOutput is the JSON shape of one result.
type searchOutput struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Parent    string   `json:"parent,omitempty"`
	Score     float64  `json:"score"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lng,omitempty"`
	Recent    bool     `json:"recent,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	opts := domain.SearchOptions{
		Limit: searchLimit,
	}

	results := searchService.Search(ctx, query, opts)

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RankedResult) error {
	out := make([]searchOutput, 0, len(results))
	for i := range results {
		o := searchOutput{
			Name:   results[i].Entity.Name,
			Type:   results[i].Entity.Type.String(),
			Parent: results[i].Entity.ParentLabel(),
			Score:  results[i].Score,
			Recent: results[i].IsRecent,
		}
		if c := results[i].Entity.Coordinates; c != nil {
			o.Latitude = &c.Lat
			o.Longitude = &c.Lng
		}
		out = append(out, o)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.RankedResult) error {
	if len(results) == 0 {
		cmd.Println("No matches found.")
		return nil
	}

	cmd.Printf("Matches for %d place(s):\n", len(results))
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, results[i].Entity.Name, results[i].Score)

		detail := results[i].Entity.Type.String()
		if parent := results[i].Entity.ParentLabel(); parent != "" {
			detail = fmt.Sprintf("%s, %s", detail, parent)
		}
		cmd.Printf("      %s\n", detail)

		if c := results[i].Entity.Coordinates; c != nil {
			cmd.Printf("      %.4f, %.4f\n", c.Lat, c.Lng)
		}
		cmd.Println()
	}

	return nil
}
