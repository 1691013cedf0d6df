package entity

import (
	"time"

	"github.com/google/uuid"
)

type IntelligenceEvent struct {
	Id              uuid.UUID
	SessionId       string
	LeadId          *string
	EventType       string
	ElementId       *string
	PropertyId      *string
	PageUrl         string
	Metadata        map[string]any
	ClientTimestamp *time.Time
	CreatedAt       time.Time
}
