package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
	"medigrip/internal/ui/services/routing"
)

func openWithResults(t *testing.T, c *Coordinator, rs ...domain.SearchResult) {
	t.Helper()
	c.Search.Keystroke("smith")
	q := c.Search.Dispatch()
	require.True(t, c.ApplyResults(q.Sequence, rs))
}

func TestApplyResultsResetsSelection(t *testing.T) {
	c := New(&eventbus.NullBus{}, 2)
	openWithResults(t, c,
		domain.SearchResult{ID: "1", Type: domain.EntityProvider, Title: "Dr. Smith"},
		domain.SearchResult{ID: "2", Type: domain.EntityProvider, Title: "Dr. Smythe"},
	)

	c.Selection.MoveDown()
	require.Equal(t, 0, c.Selection.Index())

	q := c.Search.Dispatch()
	require.True(t, c.ApplyResults(q.Sequence, c.Search.Results()))
	assert.Equal(t, -1, c.Selection.Index())
}

func TestStaleApplyLeavesSelectionAlone(t *testing.T) {
	c := New(&eventbus.NullBus{}, 2)
	openWithResults(t, c, domain.SearchResult{ID: "1", Type: domain.EntityProvider, Title: "Dr. Smith"})

	c.Selection.MoveDown()
	assert.False(t, c.ApplyResults(0, nil))
	assert.Equal(t, 0, c.Selection.Index())
}

func TestChooseRoutesAndClearsSession(t *testing.T) {
	c := New(&eventbus.NullBus{}, 2)
	openWithResults(t, c, domain.SearchResult{ID: "9", Type: domain.EntityScheme, Title: "GoldCare"})

	c.Selection.MoveDown()
	action, ok := c.Choose(domain.RoleAdmin)
	require.True(t, ok)

	assert.Equal(t, routing.DestSchemePage, action.Destination)
	assert.Equal(t, domain.ID("9"), action.EntityID)

	// Routing always leaves the panel closed and the text empty
	assert.False(t, c.Search.IsOpen())
	assert.Equal(t, "", c.Search.Text())
	assert.Equal(t, -1, c.Selection.Index())
}

func TestChooseWithoutSelectionIsNoop(t *testing.T) {
	c := New(&eventbus.NullBus{}, 2)
	openWithResults(t, c, domain.SearchResult{ID: "1", Type: domain.EntityMember, Title: "John"})

	_, ok := c.Choose(domain.RoleAdmin)
	assert.False(t, ok)
	assert.True(t, c.Search.IsOpen())
}

func TestChooseAtActsLikeClickThenEnter(t *testing.T) {
	c := New(&eventbus.NullBus{}, 2)
	openWithResults(t, c,
		domain.SearchResult{ID: "1", Type: domain.EntityMember, Title: "John Smith"},
		domain.SearchResult{ID: "2", Type: domain.EntityMember, Title: "Jane Smith"},
	)

	// A PATIENT choosing a member result gets the info panel, never the
	// members listing
	action, ok := c.ChooseAt(1, domain.RolePatient)
	require.True(t, ok)
	assert.Equal(t, routing.DestInfoPanel, action.Destination)
	assert.Equal(t, "Jane Smith", action.Result.Title)
}

func TestDismissKeepsText(t *testing.T) {
	c := New(&eventbus.NullBus{}, 2)
	openWithResults(t, c, domain.SearchResult{ID: "1", Type: domain.EntityProvider, Title: "Dr. Smith"})

	c.Selection.MoveDown()
	c.Dismiss()

	assert.False(t, c.Search.IsOpen())
	assert.Equal(t, -1, c.Selection.Index())
	assert.Equal(t, "smith", c.Search.Text())
}
