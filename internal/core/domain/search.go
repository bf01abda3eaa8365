package domain

// SearchTokens is the derived matching material for one entity name.
// Computed lazily from the lowercase name and memoized; recomputing
// for the same name must yield an equal structure.
type SearchTokens struct {
	// Tokens is the lowercase name split on whitespace.
	Tokens []string

	// NGrams holds every contiguous 2- and 3-character substring of
	// the lowercase name, used for fuzzy overlap scoring.
	NGrams []string
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit overrides the configured maximum result count when > 0.
	// Non-UI callers may raise it above the interactive default.
	Limit int

	// IncludeRecent merges recent searches into the empty-query
	// default view. The TUI sets this; batch callers usually do not.
	IncludeRecent bool
}

// RankedResult is an Entity annotated with its relevance score.
// Results live for a single search call and are never persisted.
type RankedResult struct {
	// Entity is the matched place.
	Entity Entity

	// Score is the relevance score in [0,1].
	Score float64

	// IsRecent marks entries merged from the recent-search list.
	IsRecent bool
}

// SameRow reports whether two results would render identically in a
// dropdown row. The render diff engine compares positional rows with
// this to decide between a rebuild and a no-op.
func (r RankedResult) SameRow(o RankedResult) bool {
	return r.Entity.Name == o.Entity.Name &&
		r.Entity.Type == o.Entity.Type &&
		r.IsRecent == o.IsRecent
}
