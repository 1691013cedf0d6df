package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserBehavior struct {
	Id           uuid.UUID
	SessionId    string
	LeadId       *string
	BehaviorType string
	Action       string
	Target       *string
	TargetId     *string
	Metadata     *string // serialized JSON, stored as sent
	TimeSpent    *int
	ScrollDepth  *float64
	PageUrl      string
	UserAgent    string
	IpHash       *string
	CreatedAt    time.Time
}
