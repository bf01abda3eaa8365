package services

import (
	"strings"
	"sync"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
)

// N-gram window lengths used for fuzzy overlap scoring.
const (
	minGram = 2
	maxGram = 3
)

// Tokenizer converts entity names into token lists and character
// n-gram sets. Results are memoized by lowercase name in a bounded
// FIFO cache: many entities share substrings and rapid typing would
// otherwise recompute the same material every keystroke.
type Tokenizer struct {
	mu      sync.Mutex
	cache   map[string]domain.SearchTokens
	order   []string
	maxSize int
}

// NewTokenizer creates a tokenizer with the given cache bound.
// Sizes <= 0 fall back to the default.
func NewTokenizer(cacheSize int) *Tokenizer {
	if cacheSize <= 0 {
		cacheSize = domain.DefaultTokenCacheSize
	}
	return &Tokenizer{
		cache:   make(map[string]domain.SearchTokens, cacheSize),
		order:   make([]string, 0, cacheSize),
		maxSize: cacheSize,
	}
}

// Tokenize returns the tokens and n-grams for name.
// Calling it twice with the same name yields structurally equal
// results regardless of cache evictions in between.
func (t *Tokenizer) Tokenize(name string) domain.SearchTokens {
	lower := strings.ToLower(name)

	t.mu.Lock()
	defer t.mu.Unlock()

	if cached, ok := t.cache[lower]; ok {
		return cached
	}

	tokens := domain.SearchTokens{
		Tokens: strings.Fields(lower),
		NGrams: ngrams(lower),
	}

	// Oldest-inserted key is evicted once the cache is full.
	if len(t.cache) >= t.maxSize {
		oldest := t.order[0]
		t.order = t.order[1:]
		delete(t.cache, oldest)
	}
	t.cache[lower] = tokens
	t.order = append(t.order, lower)

	return tokens
}

// CacheLen returns the current number of memoized names.
func (t *Tokenizer) CacheLen() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.cache)
}

// ngrams returns every contiguous substring of length 2 and 3,
// sliding a window over the whole string including spaces.
func ngrams(s string) []string {
	runes := []rune(s)
	if len(runes) < minGram {
		return nil
	}

	out := make([]string, 0, 2*len(runes))
	for size := minGram; size <= maxGram; size++ {
		for i := 0; i+size <= len(runes); i++ {
			out = append(out, string(runes[i:i+size]))
		}
	}
	return out
}

// queryGrams returns the 2-grams of a query for fuzzy overlap.
func queryGrams(q string) []string {
	runes := []rune(q)
	if len(runes) < minGram {
		return nil
	}
	out := make([]string, 0, len(runes)-1)
	for i := 0; i+minGram <= len(runes); i++ {
		out = append(out, string(runes[i:i+minGram]))
	}
	return out
}
