package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wayfind configuration",
	Long: `View the effective engine configuration or set individual values.

Values are stored as dot-notation keys in the TOML config file, for
example 'ranking.max_results' or 'dataset.path'.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cmd.Println("Effective Configuration")
	cmd.Println("=======================")
	cmd.Println()

	cmd.Println("[Ranking]")
	cmd.Printf("  Score threshold: %.2f\n", engineSettings.Ranking.ScoreThreshold)
	cmd.Printf("  Max results: %d\n", engineSettings.Ranking.MaxResults)
	cmd.Printf("  Admin combined cap: %d\n", engineSettings.Ranking.AdminCombinedCap)
	cmd.Println()

	cmd.Println("[Default View]")
	cmd.Printf("  Recent: %d\n", engineSettings.Ranking.RecentCap)
	cmd.Printf("  Regions: %d\n", engineSettings.Ranking.RegionCap)
	cmd.Printf("  Subregions: %d\n", engineSettings.Ranking.SubregionCap)
	cmd.Printf("  Localities: %d\n", engineSettings.Ranking.LocalityCap)
	cmd.Printf("  Settlements: %d\n", engineSettings.Ranking.SettlementCap)
	cmd.Println()

	cmd.Println("[Input]")
	cmd.Printf("  Debounce: %s\n", engineSettings.Debounce)
	cmd.Printf("  Selection cooldown: %s\n", engineSettings.Cooldown)
	cmd.Println()

	cmd.Println("[Data]")
	if engineSettings.DatasetPath != "" {
		cmd.Printf("  Dataset: %s\n", engineSettings.DatasetPath)
	} else {
		cmd.Printf("  Dataset: (embedded)\n")
	}
	cmd.Printf("  Max recent entries: %d\n", engineSettings.MaxRecent)
	cmd.Printf("  Token cache size: %d\n", engineSettings.TokenCacheSize)

	if configStore != nil {
		cmd.Println()
		cmd.Printf("Config file: %s\n", configStore.Path())
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	cmd.Println("Restart wayfind for the change to take effect.")
	return nil
}

// parseConfigValue coerces a raw argument into the narrowest TOML type.
func parseConfigValue(raw string) any {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return raw
}
