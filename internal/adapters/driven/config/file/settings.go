package file

import (
	"time"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
)

// Configuration keys for the engine tuning knobs. Nested TOML tables
// flatten to these dot-notation keys.
const (
	keyScoreThreshold = "ranking.score_threshold"
	keyMaxResults     = "ranking.max_results"
	keyAdminCap       = "ranking.admin_combined_cap"
	keyRegionCap      = "ranking.region_cap"
	keySubregionCap   = "ranking.subregion_cap"
	keyLocalityCap    = "ranking.locality_cap"
	keySettlementCap  = "ranking.settlement_cap"
	keyRecentCap      = "ranking.recent_cap"
	keyMaxRecent      = "recent.max_entries"
	keyTokenCache     = "tokenizer.cache_size"
	keyDebounceMS     = "input.debounce_ms"
	keyCooldownMS     = "input.cooldown_ms"
	keyDatasetPath    = "dataset.path"
)

// EngineSettings builds the engine configuration from a config store.
// Unset or nonsensical values fall back to the domain defaults, so an
// absent config file yields a fully usable engine.
func EngineSettings(store driven.ConfigStore) domain.EngineSettings {
	s := domain.DefaultEngineSettings()
	if store == nil {
		return s
	}

	if v := store.GetFloat(keyScoreThreshold); v > 0 {
		s.Ranking.ScoreThreshold = v
	}
	if v := store.GetInt(keyMaxResults); v > 0 {
		s.Ranking.MaxResults = v
	}
	if v := store.GetInt(keyAdminCap); v > 0 {
		s.Ranking.AdminCombinedCap = v
	}
	if v := store.GetInt(keyRegionCap); v > 0 {
		s.Ranking.RegionCap = v
	}
	if v := store.GetInt(keySubregionCap); v > 0 {
		s.Ranking.SubregionCap = v
	}
	if v := store.GetInt(keyLocalityCap); v > 0 {
		s.Ranking.LocalityCap = v
	}
	if v := store.GetInt(keySettlementCap); v > 0 {
		s.Ranking.SettlementCap = v
	}
	if v := store.GetInt(keyRecentCap); v > 0 {
		s.Ranking.RecentCap = v
	}
	if v := store.GetInt(keyMaxRecent); v > 0 {
		s.MaxRecent = v
	}
	if v := store.GetInt(keyTokenCache); v > 0 {
		s.TokenCacheSize = v
	}
	if v := store.GetInt(keyDebounceMS); v > 0 {
		s.Debounce = time.Duration(v) * time.Millisecond
	}
	if v := store.GetInt(keyCooldownMS); v > 0 {
		s.Cooldown = time.Duration(v) * time.Millisecond
	}
	if v := store.GetString(keyDatasetPath); v != "" {
		s.DatasetPath = v
	}

	return s.Normalise()
}
