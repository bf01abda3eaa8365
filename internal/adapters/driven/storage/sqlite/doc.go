// Package sqlite provides the SQLite-backed key-value store used to
// persist small engine state such as the recent-search list.
//
// The store uses modernc.org/sqlite (pure Go, no CGO) with WAL mode.
// Writes are durable before SetItem returns, matching the engine's
// synchronous persistence contract.
package sqlite
