package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrackIntelligenceRequest struct {
	SessionId  string         `json:"sessionId" validate:"required,max=128"`
	LeadId     *string        `json:"leadId" validate:"omitempty,max=64"`
	EventType  string         `json:"eventType" validate:"required,max=64"`
	ElementId  *string        `json:"elementId" validate:"omitempty,max=255"`
	PropertyId *string        `json:"propertyId" validate:"omitempty,max=64"`
	PageUrl    string         `json:"pageUrl" validate:"max=2048"`
	Metadata   map[string]any `json:"metadata"`
	Timestamp  *time.Time     `json:"timestamp"` // client clock, stored but never used for ordering
}

type IntelligenceEventResponse struct {
	Id              uuid.UUID      `json:"id"`
	SessionId       string         `json:"sessionId"`
	LeadId          *string        `json:"leadId"`
	EventType       string         `json:"eventType"`
	ElementId       *string        `json:"elementId"`
	PropertyId      *string        `json:"propertyId"`
	PageUrl         string         `json:"pageUrl"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	ClientTimestamp *time.Time     `json:"clientTimestamp"`
	CreatedAt       time.Time      `json:"createdAt"`
}
