package services

import "strings"

// Tier scores. Exact beats prefix beats substring; the multi-token
// and fuzzy tiers scale below them so a clean textual match always
// outranks an approximate one.
const (
	scoreExact      = 1.0
	scorePrefix     = 0.9
	scoreSubstring  = 0.7
	scoreTokenScale = 0.8
	scoreFuzzyScale = 0.6

	// fuzzyGate skips the n-gram tier once a stronger tier already
	// produced at least this score.
	fuzzyGate = 0.5
)

// Scorer produces a single relevance score in [0,1] for an entity
// against a query, using tiered evaluation with early exit.
type Scorer struct {
	tokenizer *Tokenizer
}

// NewScorer creates a scorer sharing the given tokenizer's memo cache.
func NewScorer(tokenizer *Tokenizer) *Scorer {
	if tokenizer == nil {
		tokenizer = NewTokenizer(0)
	}
	return &Scorer{tokenizer: tokenizer}
}

// Score evaluates nameLower against the query material.
// queryLower must already be lowercased and trimmed; queryTokens is
// its whitespace split. The tiers short-circuit from strongest to
// weakest and the result is the maximum across the tiers that apply.
func (s *Scorer) Score(queryLower string, queryTokens []string, nameLower string) float64 {
	if queryLower == "" || nameLower == "" {
		return 0
	}

	if nameLower == queryLower {
		return scoreExact
	}
	if strings.HasPrefix(nameLower, queryLower) {
		return scorePrefix
	}

	score := 0.0
	if strings.Contains(nameLower, queryLower) {
		score = scoreSubstring
	}

	// Multi-token overlap: the fraction of query tokens appearing
	// inside at least one entity token.
	if len(queryTokens) > 1 {
		entityTokens := s.tokenizer.Tokenize(nameLower).Tokens
		matched := 0
		for _, qt := range queryTokens {
			for _, et := range entityTokens {
				if strings.Contains(et, qt) {
					matched++
					break
				}
			}
		}
		overlap := float64(matched) / float64(len(queryTokens)) * scoreTokenScale
		if overlap > score {
			score = overlap
		}
	}

	// Fuzzy n-gram overlap only runs when nothing stronger matched.
	if score < fuzzyGate {
		if fuzzy := s.fuzzyScore(queryLower, nameLower); fuzzy > score {
			score = fuzzy
		}
	}

	return score
}

// fuzzyScore counts how many of the query's 2-grams occur in the
// entity's n-gram set.
func (s *Scorer) fuzzyScore(queryLower, nameLower string) float64 {
	grams := queryGrams(queryLower)
	if len(grams) == 0 {
		return 0
	}

	entityGrams := s.tokenizer.Tokenize(nameLower).NGrams
	set := make(map[string]struct{}, len(entityGrams))
	for _, g := range entityGrams {
		set[g] = struct{}{}
	}

	matched := 0
	for _, g := range grams {
		if _, ok := set[g]; ok {
			matched++
		}
	}

	return float64(matched) / float64(len(grams)) * scoreFuzzyScale
}
