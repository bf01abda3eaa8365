package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Manage recent searches",
	Long: `List, remove or clear the persisted recent-search history.
Recent searches appear at the top of the default view when the search
input is empty.`,
	RunE: runRecentList,
}

var recentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches",
	RunE:  runRecentList,
}

var recentRemoveCmd = &cobra.Command{
	Use:   "remove [index]",
	Short: "Remove one recent search by its list position",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecentRemove,
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all recent searches",
	RunE:  runRecentClear,
}

func init() {
	recentCmd.AddCommand(recentListCmd)
	recentCmd.AddCommand(recentRemoveCmd)
	recentCmd.AddCommand(recentClearCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecentList(cmd *cobra.Command, _ []string) error {
	if recentService == nil {
		return errors.New("recent service not configured")
	}

	entries := recentService.List(context.Background())
	if len(entries) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}

	cmd.Println("Recent searches:")
	for i, entry := range entries {
		cmd.Printf("  [%d] %s (%s)\n", i+1, entry.Name, entry.Type)
	}
	return nil
}

func runRecentRemove(cmd *cobra.Command, args []string) error {
	if recentService == nil {
		return errors.New("recent service not configured")
	}

	position, err := strconv.Atoi(args[0])
	if err != nil || position < 1 {
		return fmt.Errorf("invalid index %q: expected a position from 'wayfind recent list'", args[0])
	}

	recentService.Remove(context.Background(), position-1)
	cmd.Printf("Removed recent search at position %d.\n", position)
	return nil
}

func runRecentClear(cmd *cobra.Command, _ []string) error {
	if recentService == nil {
		return errors.New("recent service not configured")
	}

	recentService.Clear(context.Background())
	cmd.Println("Cleared recent searches.")
	return nil
}
