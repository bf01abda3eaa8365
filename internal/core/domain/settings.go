package domain

import "time"

// Default tuning values. These were tuned empirically against real
// datasets; behavioural parity matters more than re-derivation, so
// they are exposed as named configuration defaults.
const (
	// DefaultScoreThreshold is the minimum score a result must exceed
	// to be retained.
	DefaultScoreThreshold = 0.3

	// DefaultMaxResults bounds the interactive result list.
	DefaultMaxResults = 50

	// DefaultMaxRecent bounds the persisted recent-search list.
	DefaultMaxRecent = 10

	// DefaultTokenCacheSize bounds the tokenizer memoization cache.
	DefaultTokenCacheSize = 1000

	// DefaultDebounce is how long keystrokes must pause before a
	// search is triggered.
	DefaultDebounce = 50 * time.Millisecond

	// DefaultCooldown is the suppression window after a selection,
	// during which concurrent map-click selections are ignored.
	DefaultCooldown = 800 * time.Millisecond
)

// Empty-query default view caps, applied per tier in fixed order.
// Territories never appear in the default view.
const (
	DefaultViewRecentCap      = 5
	DefaultViewRegionCap      = 3
	DefaultViewSubregionCap   = 3
	DefaultViewLocalityCap    = 5
	DefaultViewSettlementCap  = 3
	DefaultAdminCombinedCap   = 3
	DefaultScoreTieBreakDelta = 0.1
)

// RankingConfig carries the tuning knobs for the search engine.
type RankingConfig struct {
	// ScoreThreshold is the minimum retained score.
	ScoreThreshold float64

	// MaxResults is the global cap on returned results.
	MaxResults int

	// AdminCombinedCap limits combined region+subregion results for
	// a non-empty query.
	AdminCombinedCap int

	// TieBreakDelta is the score distance within which the type
	// tie-break applies.
	TieBreakDelta float64

	// RecentCap, RegionCap, SubregionCap, LocalityCap and
	// SettlementCap shape the empty-query default view.
	RecentCap     int
	RegionCap     int
	SubregionCap  int
	LocalityCap   int
	SettlementCap int
}

// DefaultRankingConfig returns the tuned defaults.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		ScoreThreshold:   DefaultScoreThreshold,
		MaxResults:       DefaultMaxResults,
		AdminCombinedCap: DefaultAdminCombinedCap,
		TieBreakDelta:    DefaultScoreTieBreakDelta,
		RecentCap:        DefaultViewRecentCap,
		RegionCap:        DefaultViewRegionCap,
		SubregionCap:     DefaultViewSubregionCap,
		LocalityCap:      DefaultViewLocalityCap,
		SettlementCap:    DefaultViewSettlementCap,
	}
}

// Normalise clamps nonsensical values back to the defaults.
func (c RankingConfig) Normalise() RankingConfig {
	d := DefaultRankingConfig()
	if c.ScoreThreshold <= 0 || c.ScoreThreshold >= 1 {
		c.ScoreThreshold = d.ScoreThreshold
	}
	if c.MaxResults <= 0 {
		c.MaxResults = d.MaxResults
	}
	if c.AdminCombinedCap <= 0 {
		c.AdminCombinedCap = d.AdminCombinedCap
	}
	if c.TieBreakDelta <= 0 {
		c.TieBreakDelta = d.TieBreakDelta
	}
	if c.RecentCap < 0 {
		c.RecentCap = d.RecentCap
	}
	if c.RegionCap <= 0 {
		c.RegionCap = d.RegionCap
	}
	if c.SubregionCap <= 0 {
		c.SubregionCap = d.SubregionCap
	}
	if c.LocalityCap <= 0 {
		c.LocalityCap = d.LocalityCap
	}
	if c.SettlementCap <= 0 {
		c.SettlementCap = d.SettlementCap
	}
	return c
}

// EngineSettings groups the whole engine configuration.
type EngineSettings struct {
	// Ranking carries the scoring and capping knobs.
	Ranking RankingConfig

	// MaxRecent bounds the recent-search list.
	MaxRecent int

	// TokenCacheSize bounds the tokenizer memoization cache.
	TokenCacheSize int

	// Debounce is the keystroke debounce interval.
	Debounce time.Duration

	// Cooldown is the post-selection suppression window.
	Cooldown time.Duration

	// DatasetPath overrides the embedded gazetteer when set.
	DatasetPath string
}

// DefaultEngineSettings returns the default engine configuration.
func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		Ranking:        DefaultRankingConfig(),
		MaxRecent:      DefaultMaxRecent,
		TokenCacheSize: DefaultTokenCacheSize,
		Debounce:       DefaultDebounce,
		Cooldown:       DefaultCooldown,
	}
}

// Normalise clamps nonsensical values back to the defaults.
func (s EngineSettings) Normalise() EngineSettings {
	d := DefaultEngineSettings()
	s.Ranking = s.Ranking.Normalise()
	if s.MaxRecent <= 0 {
		s.MaxRecent = d.MaxRecent
	}
	if s.TokenCacheSize <= 0 {
		s.TokenCacheSize = d.TokenCacheSize
	}
	if s.Debounce <= 0 {
		s.Debounce = d.Debounce
	}
	if s.Cooldown <= 0 {
		s.Cooldown = d.Cooldown
	}
	return s
}
