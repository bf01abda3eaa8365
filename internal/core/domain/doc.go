// Package domain defines the core business entities for Wayfind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entity: A searchable geographic place
//   - SearchTokens: Derived token/n-gram material for fuzzy matching
//   - RankedResult: An entity annotated with a relevance score
//   - RecentSearch: A persisted past selection
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
