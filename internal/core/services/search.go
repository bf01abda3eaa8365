package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driving"
	"github.com/wayfind-labs/wayfind-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// scoredEntity holds an intermediate hit before capping.
type scoredEntity struct {
	entity domain.Entity
	score  float64
}

// SearchService ranks entities across the five tiers from partial
// user input. It tolerates being queried before its entity source has
// resolved: such searches return an empty list and the caller re-runs
// once Ready fires.
type SearchService struct {
	source    driven.EntitySource
	recent    driving.RecentService
	tokenizer *Tokenizer
	scorer    *Scorer
	config    domain.RankingConfig
}

// NewSearchService creates a search service.
// The recent parameter is optional (can be nil); without it the
// empty-query default view simply carries no recent entries.
func NewSearchService(
	source driven.EntitySource,
	recent driving.RecentService,
	tokenizer *Tokenizer,
	config domain.RankingConfig,
) *SearchService {
	if tokenizer == nil {
		tokenizer = NewTokenizer(0)
	}
	return &SearchService{
		source:    source,
		recent:    recent,
		tokenizer: tokenizer,
		scorer:    NewScorer(tokenizer),
		config:    config.Normalise(),
	}
}

// Ready is closed once the entity source has loaded.
func (s *SearchService) Ready() <-chan struct{} {
	return s.source.Ready()
}

// Reloaded signals each wholesale dataset replacement.
func (s *SearchService) Reloaded() <-chan struct{} {
	return s.source.Reloaded()
}

// Search ranks all loaded entities against query.
// Never returns an error to the caller: a missing dataset degrades to
// an empty list and is logged, per the engine's propagation policy.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) []domain.RankedResult {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	collections, err := s.source.Collections(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotReady) {
			logger.Debug("Entity data not ready, returning no results")
		} else {
			logger.Warn("Entity source failed: %v", err)
		}
		return []domain.RankedResult{}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return s.defaultView(ctx, &collections, opts)
	}

	limit := s.config.MaxResults
	if opts.Limit > 0 {
		limit = opts.Limit
	}
	logger.Debug("Limit: %d, threshold: %.2f", limit, s.config.ScoreThreshold)

	queryLower := strings.ToLower(query)
	queryTokens := strings.Fields(queryLower)

	// Score every loaded entity across all tiers, territories included.
	hits := make([]scoredEntity, 0, 64)
	for _, entity := range collections.All() {
		score := s.scorer.Score(queryLower, queryTokens, entity.NameLower)
		if score > s.config.ScoreThreshold {
			hits = append(hits, scoredEntity{entity: entity, score: score})
		}
	}
	logger.Debug("Raw hits above threshold: %d", len(hits))

	s.sortHits(hits)
	results := s.applyAdminCap(hits)

	if len(results) > limit {
		results = results[:limit]
	}
	logger.Info("Final results: %d", len(results))

	return results
}

// sortHits orders hits by score descending. When two scores are
// within TieBreakDelta, point tiers (locality/settlement) sink below
// administrative and territory tiers; names break the final tie.
func (s *SearchService) sortHits(hits []scoredEntity) {
	delta := s.config.TieBreakDelta
	sort.SliceStable(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]

		diff := a.score - b.score
		if diff >= delta {
			return true
		}
		if diff <= -delta {
			return false
		}

		aPoint := a.entity.Type.IsPoint()
		bPoint := b.entity.Type.IsPoint()
		if aPoint != bPoint {
			return !aPoint
		}

		if a.score != b.score {
			return a.score > b.score
		}
		return a.entity.NameLower < b.entity.NameLower
	})
}

// applyAdminCap keeps at most AdminCombinedCap region+subregion
// results so administrative levels never dominate the list. Other
// tiers pass through uncapped.
func (s *SearchService) applyAdminCap(hits []scoredEntity) []domain.RankedResult {
	results := make([]domain.RankedResult, 0, len(hits))
	adminCount := 0

	for _, hit := range hits {
		if hit.entity.Type.IsAdministrative() {
			if adminCount >= s.config.AdminCombinedCap {
				continue
			}
			adminCount++
		}
		results = append(results, domain.RankedResult{
			Entity: hit.entity,
			Score:  hit.score,
		})
	}

	return results
}

// defaultView builds the empty-query view: recent searches first,
// then regions, subregions, localities and settlements, each tier
// truncated to its cap. Territories only surface under explicit
// search.
func (s *SearchService) defaultView(
	ctx context.Context, collections *domain.Collections, opts domain.SearchOptions,
) []domain.RankedResult {
	logger.Debug("Empty query, building default view")

	results := make([]domain.RankedResult, 0,
		s.config.RecentCap+s.config.RegionCap+s.config.SubregionCap+
			s.config.LocalityCap+s.config.SettlementCap)

	if opts.IncludeRecent && s.recent != nil {
		for _, r := range s.recent.List(ctx) {
			if len(results) >= s.config.RecentCap {
				break
			}
			results = append(results, domain.RankedResult{
				Entity:   s.resolveRecent(collections, r),
				Score:    scoreExact,
				IsRecent: true,
			})
		}
	}

	results = appendTier(results, collections.Regions, s.config.RegionCap)
	results = appendTier(results, collections.Subregions, s.config.SubregionCap)
	results = appendTier(results, collections.Localities, s.config.LocalityCap)
	results = appendTier(results, collections.Settlements, s.config.SettlementCap)

	logger.Debug("Default view: %d entries", len(results))
	return results
}

// resolveRecent recovers the full entity behind a recent record so a
// re-selection can still fly the map; a bare entity stands in when
// the dataset no longer contains the name.
func (s *SearchService) resolveRecent(
	collections *domain.Collections, r domain.RecentSearch,
) domain.Entity {
	nameLower := strings.ToLower(r.Name)
	for _, entity := range collections.All() {
		if entity.NameLower == nameLower && entity.Type == r.Type {
			return entity
		}
	}
	return domain.NewEntity(r.Name, r.Type, nil)
}

func appendTier(dst []domain.RankedResult, tier []domain.Entity, limit int) []domain.RankedResult {
	for i, entity := range tier {
		if i >= limit {
			break
		}
		dst = append(dst, domain.RankedResult{Entity: entity})
	}
	return dst
}
