package events

import "time"

const (
	TypeBehaviorTracked = "behavior.tracked"
	TypeLeadCreated     = "lead.created"
)

// Event is a funnel fact published on the bus.
type Event interface {
	// ID identifies the underlying record. The bus uses it to drop
	// duplicate publishes of the same fact.
	ID() string

	// EventType returns the subject suffix, e.g. "lead.created".
	EventType() string

	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Key        string
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) ID() string { return e.Key }
func (e BaseEvent) EventType() string { return e.Type }
func (e BaseEvent) Payload() map[string]interface{} { return e.Data }
func (e BaseEvent) Timestamp() time.Time { return e.OccurredAt }
