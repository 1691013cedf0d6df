package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrackBehaviorRequest struct {
	SessionId    string   `json:"sessionId" validate:"required,max=128"`
	LeadId       *string  `json:"leadId" validate:"omitempty,max=64"`
	BehaviorType string   `json:"behaviorType" validate:"required,max=64,snakecase"`
	Action       string   `json:"action" validate:"required,max=128"`
	Target       *string  `json:"target" validate:"omitempty,max=255"`
	TargetId     *string  `json:"targetId" validate:"omitempty,max=255"`
	Metadata     *string  `json:"metadata"` // serialized JSON, opaque to the server
	TimeSpent    *int     `json:"timeSpent" validate:"omitempty,gte=0"`
	ScrollDepth  *float64 `json:"scrollDepth" validate:"omitempty,gte=0,lte=100"`
	PageUrl      string   `json:"pageUrl" validate:"max=2048"`
	UserAgent    string   `json:"userAgent" validate:"max=1024"`
}

// RequestMeta carries what the server learns from the HTTP request itself.
type RequestMeta struct {
	UserAgent string
	ClientIP  string
}

type TrackBehaviorResponse struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type PageQuery struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// EventWindow bounds events by server creation time as [From, To). A zero
// bound is open.
type EventWindow struct {
	From time.Time
	To   time.Time
}

func (w EventWindow) IsZero() bool {
	return w.From.IsZero() && w.To.IsZero()
}

type BehaviorEventResponse struct {
	Id           uuid.UUID `json:"id"`
	SessionId    string    `json:"sessionId"`
	LeadId       *string   `json:"leadId"`
	BehaviorType string    `json:"behaviorType"`
	Action       string    `json:"action"`
	Target       *string   `json:"target"`
	TargetId     *string   `json:"targetId"`
	Metadata     *string   `json:"metadata"`
	TimeSpent    *int      `json:"timeSpent"`
	ScrollDepth  *float64  `json:"scrollDepth"`
	PageUrl      string    `json:"pageUrl"`
	UserAgent    string    `json:"userAgent"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SessionEventsResponse struct {
	SessionId string                   `json:"sessionId"`
	Events    []*BehaviorEventResponse `json:"events"`
	Total     int64                    `json:"total"`
	Limit     int                      `json:"limit"`
	Offset    int                      `json:"offset"`
}

// LeadTimelineResponse pages Events and Intelligence with the same limit and
// offset. Total counts behavior events only.
type LeadTimelineResponse struct {
	LeadId       string                       `json:"leadId"`
	Sessions     []string                     `json:"sessions"`
	Events       []*BehaviorEventResponse     `json:"events"`
	Intelligence []*IntelligenceEventResponse `json:"intelligence"`
	Total        int64                        `json:"total"`
	Limit        int                          `json:"limit"`
	Offset       int                          `json:"offset"`
}

type DailyStatsResponse struct {
	Date     string           `json:"date"`
	Counters map[string]int64 `json:"counters"`
	Total    int64            `json:"total"`
}

// BehaviorTrackedMessage travels on the in-process topic after an event is stored.
type BehaviorTrackedMessage struct {
	Id           uuid.UUID `json:"id"`
	SessionId    string    `json:"sessionId"`
	LeadId       *string   `json:"leadId,omitempty"`
	BehaviorType string    `json:"behaviorType"`
	Action       string    `json:"action"`
	PageUrl      string    `json:"pageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}
