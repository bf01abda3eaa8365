// Package cli provides the command-line interface for wayfind.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
	"github.com/wayfind-labs/wayfind-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging for all commands.
var verbose bool

// Services injected by the composition root before Execute.
var (
	searchService    driving.SearchService
	recentService    driving.RecentService
	selectionService driving.SelectionService
	configStore      driven.ConfigStore
	engineSettings   = domain.DefaultEngineSettings()
)

var rootCmd = &cobra.Command{
	Use:   "wayfind",
	Short: "Search-as-you-type for hierarchical place data",
	Long: `Wayfind ranks territories, regions, subregions, localities and
settlements against partial input, with fuzzy matching and tiered
result capping.

Run without a subcommand to launch the interactive interface.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string displayed by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects the core services. Must be called before Execute.
func SetServices(
	search driving.SearchService,
	recent driving.RecentService,
	selection driving.SelectionService,
) {
	searchService = search
	recentService = recent
	selectionService = selection
}

// SetConfigStore injects the configuration store.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetEngineSettings injects the effective engine settings.
func SetEngineSettings(settings domain.EngineSettings) {
	engineSettings = settings
}
