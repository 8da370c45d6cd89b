package domain

// EventType represents the type of notification emitted by a zone
type EventType string

// Event types
const (
	EventChange   EventType = "change"
	EventSelected EventType = "selected" // deprecated alias of change
	EventError    EventType = "error"
)

// DomainEvent is the interface for all notifications
type DomainEvent interface {
	Type() EventType
}

// ChangeEvent is emitted when a selection replaces the current files
type ChangeEvent struct {
	Source string // zone ID
	Files  []File
}

func (e ChangeEvent) Type() EventType { return EventChange }

// SelectedEvent carries the same payload as ChangeEvent under the legacy name
type SelectedEvent struct {
	Source string
	Files  []File
}

func (e SelectedEvent) Type() EventType { return EventSelected }

// ErrorEvent is emitted when a selection attempt is rejected
type ErrorEvent struct {
	Source string
	Err    error
}

func (e ErrorEvent) Type() EventType { return EventError }
