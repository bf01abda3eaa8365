// Command wayfind is the entry point for the wayfind CLI.
// It wires the driven adapters to the core services and hands control
// to the command layer.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driven/bridge"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driven/config/file"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driven/geodata"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driven/storage/sqlite"
	"github.com/wayfind-labs/wayfind-cli/internal/adapters/driving/cli"
	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/services"
	"github.com/wayfind-labs/wayfind-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open configuration: %w", err)
	}
	settings := file.EngineSettings(configStore)

	source, err := geodata.New(settings.DatasetPath)
	if err != nil {
		return fmt.Errorf("failed to load place data: %w", err)
	}
	defer source.Close()

	kvStore, err := sqlite.NewKVStore("")
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer kvStore.Close()

	ctx := context.Background()

	recentService := services.NewRecentService(ctx, kvStore, settings.MaxRecent)
	tokenizer := services.NewTokenizer(settings.TokenCacheSize)
	searchService := services.NewSearchService(source, recentService, tokenizer, settings.Ranking)

	mapBridge, err := newMapBridge(ctx, source)
	if err != nil {
		return err
	}
	selectionService := services.NewSelectionService(mapBridge, mapBridge, recentService, settings.Cooldown)

	cli.SetVersion(version)
	cli.SetServices(searchService, recentService, selectionService)
	cli.SetConfigStore(configStore)
	cli.SetEngineSettings(settings)

	return cli.Execute()
}

// newMapBridge creates the JSON-lines command bridge. Commands append
// to a stream file under the wayfind data directory, where an
// embedding host can tail them. The boundary set is every
// administrative name in the loaded collection.
func newMapBridge(ctx context.Context, source *geodata.Source) (*bridge.Bridge, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	dataDir := filepath.Join(home, ".wayfind", "data")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	streamPath := filepath.Join(dataDir, "commands.jsonl")
	stream, err := os.OpenFile(streamPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open command stream: %w", err)
	}

	return bridge.New(stream, boundaryNames(ctx, source)), nil
}

// boundaryNames gathers the administrative names the map can frame.
func boundaryNames(ctx context.Context, source *geodata.Source) []string {
	collections, err := source.Collections(ctx)
	if err != nil {
		logger.Warn("Boundary names unavailable: %v", err)
		return nil
	}

	names := make([]string, 0,
		len(collections.Territories)+len(collections.Regions)+len(collections.Subregions))
	for _, tier := range [][]domain.Entity{
		collections.Territories, collections.Regions, collections.Subregions,
	} {
		for i := range tier {
			names = append(names, tier[i].Name)
		}
	}
	return names
}
