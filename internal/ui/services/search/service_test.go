package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
)

func newService() *Service {
	return NewService(&eventbus.NullBus{}, 2)
}

func results(titles ...string) []domain.SearchResult {
	out := make([]domain.SearchResult, len(titles))
	for i, t := range titles {
		out[i] = domain.SearchResult{
			ID:    domain.ID("r" + t),
			Type:  domain.EntityProvider,
			Title: t,
		}
	}
	return out
}

func TestKeystrokeDebounceOnlyLastTicketCommits(t *testing.T) {
	s := newService()

	// Typing faster than the quiet interval: each keystroke supersedes
	// the previous pending commit.
	t1, ok := s.Keystroke("sm")
	require.True(t, ok)
	t2, ok := s.Keystroke("smi")
	require.True(t, ok)
	t3, ok := s.Keystroke("smit")
	require.True(t, ok)

	assert.False(t, s.ShouldDispatch(t1))
	assert.False(t, s.ShouldDispatch(t2))
	assert.True(t, s.ShouldDispatch(t3))

	// Exactly one dispatch, using the final text
	q := s.Dispatch()
	assert.Equal(t, "smit", q.Text)
	assert.Equal(t, uint64(1), q.Sequence)
}

func TestShortInputClearsWithoutDispatch(t *testing.T) {
	s := newService()

	ticket, queued := s.Keystroke("ab")
	require.True(t, queued)

	// Cleared before the quiet interval elapsed: no query may ever fire
	_, queued = s.Keystroke("")
	assert.False(t, queued)
	assert.False(t, s.ShouldDispatch(ticket))
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsLoading())
}

func TestSingleCharacterClosesPanelImmediately(t *testing.T) {
	s := newService()

	s.Keystroke("dr")
	q := s.Dispatch()
	require.True(t, s.ApplyResults(q.Sequence, results("Dr. Smith")))
	require.True(t, s.IsOpen())

	// Below minimum length: panel closes with no network call, and the
	// in-flight sequence can no longer influence state.
	_, queued := s.Keystroke("d")
	assert.False(t, queued)
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.Results())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	s := newService()

	s.Keystroke("sm")
	qA := s.Dispatch()
	s.Keystroke("smi")
	qB := s.Dispatch()

	// B's response lands first and is applied
	require.True(t, s.ApplyResults(qB.Sequence, results("Smith", "Smit")))
	require.Len(t, s.Results(), 2)

	// A's response arrives late: applying it must be a no-op
	assert.False(t, s.ApplyResults(qA.Sequence, results("Small")))
	assert.Len(t, s.Results(), 2)
	assert.Equal(t, "Smith", s.Results()[0].Title)
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	s := newService()

	s.Keystroke("sm")
	qA := s.Dispatch()
	s.Keystroke("smi")
	qB := s.Dispatch()

	require.True(t, s.ApplyResults(qB.Sequence, results("Smith")))

	// The superseded request timing out must not disturb B's results
	assert.False(t, s.ApplyError(qA.Sequence))
	assert.True(t, s.IsOpen())
	assert.Len(t, s.Results(), 1)
}

func TestCurrentFailureResolvesToEmptyState(t *testing.T) {
	s := newService()

	s.Keystroke("sm")
	q := s.Dispatch()
	require.True(t, s.IsLoading())

	assert.True(t, s.ApplyError(q.Sequence))
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.Results())
}

func TestEmptyResultsCloseThePanel(t *testing.T) {
	s := newService()

	s.Keystroke("zz")
	q := s.Dispatch()

	require.True(t, s.ApplyResults(q.Sequence, nil))
	assert.False(t, s.IsOpen())
	assert.False(t, s.IsLoading())
}

func TestFilterChangeRedispatchesWithSameText(t *testing.T) {
	s := newService()

	s.Keystroke("smith")
	first := s.Dispatch()

	require.True(t, s.SetFilter(domain.FilterMembers))
	second := s.Dispatch()

	assert.Equal(t, "smith", second.Text)
	assert.Equal(t, domain.FilterMembers, second.Filter)
	assert.Greater(t, second.Sequence, first.Sequence)

	// The pre-filter response is now stale
	assert.False(t, s.ApplyResults(first.Sequence, results("old")))
}

func TestFilterChangeBelowMinLengthDoesNotDispatch(t *testing.T) {
	s := newService()

	s.Keystroke("s")
	assert.False(t, s.SetFilter(domain.FilterClaims))
}

func TestSameFilterIsNoop(t *testing.T) {
	s := newService()

	s.Keystroke("smith")
	assert.False(t, s.SetFilter(domain.FilterAll))
}

func TestCycleFilterWalksAllFiltersInOrder(t *testing.T) {
	s := newService()
	s.Keystroke("smith")

	seen := []domain.EntityFilter{s.Filter()}
	for range domain.Filters[1:] {
		s.CycleFilter()
		seen = append(seen, s.Filter())
	}
	assert.Equal(t, domain.Filters, seen)

	s.CycleFilter()
	assert.Equal(t, domain.FilterAll, s.Filter())
}

func TestClearCancelsInFlightInfluence(t *testing.T) {
	s := newService()

	s.Keystroke("smith")
	q := s.Dispatch()
	s.Clear()

	assert.False(t, s.ApplyResults(q.Sequence, results("Smith")))
	assert.False(t, s.IsOpen())
	assert.Equal(t, "", s.Text())
}

func TestDispatchMarksQueryInFlight(t *testing.T) {
	s := newService()

	s.Keystroke("sm")
	s.Dispatch()

	// Open while a query is in flight, even with no results yet
	assert.True(t, s.IsOpen())
	assert.True(t, s.IsLoading())
}
