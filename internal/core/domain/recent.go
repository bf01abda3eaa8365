package domain

import "strings"

// RecentSearch is one persisted past selection.
// The recent list holds at most a configured number of entries, no
// two entries share a Name, and entries are ordered most-recent-first.
type RecentSearch struct {
	// Term is the query text the user typed when selecting.
	Term string `json:"term"`

	// Name is the display name of the selected entity.
	Name string `json:"name"`

	// Type is the selected entity's tier.
	Type EntityType `json:"type"`

	// Timestamp is the selection time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// IsZero returns true for an empty record.
func (r RecentSearch) IsZero() bool {
	return r.Term == "" && r.Name == ""
}

// Validate checks the record is usable.
func (r RecentSearch) Validate() error {
	if strings.TrimSpace(r.Term) == "" || strings.TrimSpace(r.Name) == "" {
		return ErrInvalidInput
	}
	if !r.Type.IsValid() {
		return ErrInvalidInput
	}
	return nil
}
