package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchDispatched EventType = "SearchDispatched"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchDiscarded  EventType = "SearchDiscarded"
	EventSearchCleared    EventType = "SearchCleared"
	EventSelectionMoved   EventType = "SelectionMoved"
	EventResultRouted     EventType = "ResultRouted"
	EventPanelDismissed   EventType = "PanelDismissed"
	EventScreenChanged    EventType = "ScreenChanged"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchDispatchedEvent is emitted when a query is sent to the search endpoint
type SearchDispatchedEvent struct {
	Text     string
	Filter   EntityFilter
	Sequence uint64
}

func (e SearchDispatchedEvent) Type() EventType { return EventSearchDispatched }

// SearchCompletedEvent is emitted when a current response is applied
type SearchCompletedEvent struct {
	Sequence uint64
	Count    int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchDiscardedEvent is emitted when a stale response is rejected
type SearchDiscardedEvent struct {
	Sequence uint64
	Latest   uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// SearchClearedEvent is emitted when the search session is cleared
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// SelectionMovedEvent is emitted when the active result index changes
type SelectionMovedEvent struct {
	OldIndex int
	NewIndex int
}

func (e SelectionMovedEvent) Type() EventType { return EventSelectionMoved }

// ResultRoutedEvent is emitted when a chosen result has been routed
type ResultRoutedEvent struct {
	Result      SearchResult
	Destination string
}

func (e ResultRoutedEvent) Type() EventType { return EventResultRouted }

// PanelDismissedEvent is emitted when the results panel closes without a choice
type PanelDismissedEvent struct {
	Trigger string // "outside", "viewport", "cancel"
}

func (e PanelDismissedEvent) Type() EventType { return EventPanelDismissed }

// ScreenChangedEvent is emitted when the dashboard switches screens
type ScreenChangedEvent struct {
	Screen string
}

func (e ScreenChangedEvent) Type() EventType { return EventScreenChanged }

// ErrorEvent is emitted when a swallowed failure is logged
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
