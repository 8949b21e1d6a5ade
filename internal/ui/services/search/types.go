package search

import "medigrip/internal/domain"

// State holds the search session state. It is created when the search
// control mounts and cleared (not destroyed) when the input is emptied,
// Escape is pressed, or a result is chosen.
type State struct {
	Text      string
	Filter    domain.EntityFilter
	Results   []domain.SearchResult
	IsOpen    bool
	IsLoading bool
}

// Query is a dispatched search query. Sequence is assigned at dispatch
// time and is the sole mechanism for ordering responses.
type Query struct {
	Text     string
	Filter   domain.EntityFilter
	Sequence uint64
}
