package coordinator

import (
	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
	"medigrip/internal/ui/services/routing"
	"medigrip/internal/ui/services/search"
	"medigrip/internal/ui/services/selection"
)

// Coordinator manages the search overlay services and their interactions
type Coordinator struct {
	Search    *search.Service
	Selection *selection.Service
	Routing   *routing.Service

	bus eventbus.EventBus
}

// New creates a coordinator with all services wired together
func New(bus eventbus.EventBus, minQueryLen int) *Coordinator {
	c := &Coordinator{
		Search:    search.NewService(bus, minQueryLen),
		Selection: selection.NewService(bus),
		Routing:   routing.NewService(bus),
		bus:       bus,
	}

	// Selection ranges over whatever the search session currently shows
	c.Selection.SetCountFunction(func() int {
		return c.Search.ResultCount()
	})

	return c
}

// ApplyResults applies a search response behind the sequence guard and
// resets the selection when new results become visible.
func (c *Coordinator) ApplyResults(sequence uint64, results []domain.SearchResult) bool {
	applied := c.Search.ApplyResults(sequence, results)
	if applied {
		c.Selection.Reset()
	}
	return applied
}

// Choose routes the result at the active index, then clears the whole
// session: routing always leaves the panel closed and the text empty.
func (c *Coordinator) Choose(role domain.Role) (routing.Action, bool) {
	idx := c.Selection.Index()
	results := c.Search.Results()
	if idx < 0 || idx >= len(results) {
		return routing.Action{}, false
	}

	action := c.Routing.Route(results[idx], role)
	c.Dismiss()
	c.Search.Clear()
	return action, true
}

// ChooseAt selects a specific row and routes it (pointer click)
func (c *Coordinator) ChooseAt(index int, role domain.Role) (routing.Action, bool) {
	c.Selection.Select(index)
	return c.Choose(role)
}

// Dismiss closes the panel without routing and resets the selection
func (c *Coordinator) Dismiss() {
	c.Search.Close()
	c.Selection.Reset()
}

// Clear empties the session entirely (text included)
func (c *Coordinator) Clear() {
	c.Search.Clear()
	c.Selection.Reset()
}
