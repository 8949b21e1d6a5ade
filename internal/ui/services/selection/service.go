package selection

import (
	"medigrip/internal/domain"
	"medigrip/internal/eventbus"
)

// Service tracks the active result index while the panel is open.
// Movement wraps at both ends; with an empty result list every movement
// is a no-op.
type Service struct {
	state   *State
	bus     eventbus.EventBus
	countFn func() int // Function to get the current result count
}

// NewService creates a new selection service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{Index: -1},
		bus:   bus,
	}
}

// SetCountFunction sets the function used to read the result count
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// MoveDown advances the selection, wrapping from last to first
func (s *Service) MoveDown() {
	n := s.count()
	if n == 0 {
		return
	}
	old := s.state.Index
	s.state.Index = (s.state.Index + 1) % n
	s.publishMove(old)
}

// MoveUp retreats the selection, wrapping from first to last
func (s *Service) MoveUp() {
	n := s.count()
	if n == 0 {
		return
	}
	old := s.state.Index
	s.state.Index = (s.state.Index - 1 + n) % n
	s.publishMove(old)
}

// Select sets the selection to a specific index (pointer click on a row)
func (s *Service) Select(index int) {
	n := s.count()
	if index < 0 || index >= n {
		return
	}
	old := s.state.Index
	s.state.Index = index
	if old != index {
		s.publishMove(old)
	}
}

// Reset clears the selection. Closing the panel always resets to -1.
func (s *Service) Reset() {
	s.state.Index = -1
}

// Index returns the active result index, -1 when none
func (s *Service) Index() int {
	return s.state.Index
}

func (s *Service) count() int {
	if s.countFn == nil {
		return 0
	}
	return s.countFn()
}

func (s *Service) publishMove(old int) {
	s.bus.Publish(domain.SelectionMovedEvent{
		OldIndex: old,
		NewIndex: s.state.Index,
	})
}
