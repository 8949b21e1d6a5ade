package search

import (
	"strings"

	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
)

// Service owns the type-ahead search session: the debounced input
// buffer, the query dispatcher and its staleness guard, and the visible
// result state. All methods are called from the UI update loop; the only
// asynchronous boundary is the network call, whose outcome re-enters
// through ApplyResults or ApplyError gated by the sequence check.
type Service struct {
	state  *State
	bus    eventbus.EventBus
	minLen int

	ticket uint64 // latest debounce ticket; older tickets are ignored
	seq    uint64 // latest issued query sequence
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus, minLen int) *Service {
	return &Service{
		state: &State{
			Filter: domain.FilterAll,
		},
		bus:    bus,
		minLen: minLen,
	}
}

// Keystroke records a text change. Text at or above the minimum length
// returns a debounce ticket to commit after the quiet interval. Shorter
// text bypasses the debounce entirely: results are dropped, the panel
// closes, and any in-flight response loses its influence on state.
func (s *Service) Keystroke(text string) (ticket uint64, queued bool) {
	s.state.Text = text

	if !s.longEnough(text) {
		s.ticket++ // cancel any pending commit
		s.closeResults()
		s.bus.Publish(domain.SearchClearedEvent{})
		return 0, false
	}

	s.ticket++
	return s.ticket, true
}

// ShouldDispatch reports whether a debounce ticket is still current.
// A ticket issued before a later keystroke, a clear, or a teardown never
// commits.
func (s *Service) ShouldDispatch(ticket uint64) bool {
	return ticket != 0 && ticket == s.ticket && s.longEnough(s.state.Text)
}

// Dispatch allocates the next sequence number for the current
// (text, filter) pair and marks the session loading. The caller issues
// the network request and feeds the outcome back with the sequence.
func (s *Service) Dispatch() Query {
	s.seq++
	s.state.IsLoading = true
	s.state.IsOpen = true

	q := Query{
		Text:     s.state.Text,
		Filter:   s.state.Filter,
		Sequence: s.seq,
	}
	s.bus.Publish(domain.SearchDispatchedEvent{
		Text:     q.Text,
		Filter:   q.Filter,
		Sequence: q.Sequence,
	})
	return q
}

// ApplyResults applies a response if and only if it belongs to the most
// recently issued query. Responses can arrive in any order, so the check
// is equality with the latest sequence, not "newer than last applied":
// a reply older than one already applied must be rejected too. Returns
// whether the response was applied.
func (s *Service) ApplyResults(sequence uint64, results []domain.SearchResult) bool {
	if sequence != s.seq {
		s.bus.Publish(domain.SearchDiscardedEvent{Sequence: sequence, Latest: s.seq})
		return false
	}

	s.state.Results = results
	s.state.IsLoading = false
	s.state.IsOpen = len(results) > 0

	s.bus.Publish(domain.SearchCompletedEvent{Sequence: sequence, Count: len(results)})
	return true
}

// ApplyError resolves a failed dispatch to the empty state. Stale
// failures are discarded like stale successes. The error itself is the
// caller's to log; it never surfaces past "no results".
func (s *Service) ApplyError(sequence uint64) bool {
	if sequence != s.seq {
		s.bus.Publish(domain.SearchDiscardedEvent{Sequence: sequence, Latest: s.seq})
		return false
	}

	s.closeResults()
	return true
}

// SetFilter changes the entity filter. When the current text is long
// enough the caller must immediately re-dispatch with a new sequence;
// the return value says so.
func (s *Service) SetFilter(filter domain.EntityFilter) (redispatch bool) {
	if filter == s.state.Filter {
		return false
	}
	s.state.Filter = filter
	return s.longEnough(s.state.Text)
}

// CycleFilter advances to the next entity filter in order
func (s *Service) CycleFilter() (redispatch bool) {
	for i, f := range domain.Filters {
		if f == s.state.Filter {
			return s.SetFilter(domain.Filters[(i+1)%len(domain.Filters)])
		}
	}
	return s.SetFilter(domain.FilterAll)
}

// Clear empties the whole session: text, results, panel, and the
// influence of anything still in flight.
func (s *Service) Clear() {
	s.state.Text = ""
	s.ticket++
	s.closeResults()
	s.bus.Publish(domain.SearchClearedEvent{})
}

// Close dismisses the results panel but keeps the typed text
func (s *Service) Close() {
	s.closeResults()
}

// Accessors

// Text returns the current input text
func (s *Service) Text() string { return s.state.Text }

// Filter returns the current entity filter
func (s *Service) Filter() domain.EntityFilter { return s.state.Filter }

// Results returns the visible results in server order
func (s *Service) Results() []domain.SearchResult { return s.state.Results }

// ResultCount returns the number of visible results
func (s *Service) ResultCount() int { return len(s.state.Results) }

// IsOpen reports whether the results panel is open
func (s *Service) IsOpen() bool { return s.state.IsOpen }

// IsLoading reports whether a query is in flight
func (s *Service) IsLoading() bool { return s.state.IsLoading }

// Latest returns the most recently issued sequence number
func (s *Service) Latest() uint64 { return s.seq }

// Internal methods

// closeResults drops results and advances the sequence so an in-flight
// response can never reopen the panel.
func (s *Service) closeResults() {
	s.seq++
	s.state.Results = nil
	s.state.IsOpen = false
	s.state.IsLoading = false
}

func (s *Service) longEnough(text string) bool {
	return len(strings.TrimSpace(text)) >= s.minLen
}
