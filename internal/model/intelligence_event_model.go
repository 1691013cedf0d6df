package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IntelligenceEvent struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       string         `gorm:"type:varchar(128);not null;index"`
	LeadId          *string        `gorm:"type:varchar(64);index"`
	EventType       string         `gorm:"type:varchar(64);not null;index"`
	ElementId       *string        `gorm:"type:varchar(255)"`
	PropertyId      *string        `gorm:"type:varchar(64);index"`
	PageUrl         string         `gorm:"type:text"`
	Metadata        datatypes.JSON `gorm:"type:jsonb"`
	ClientTimestamp *time.Time
	CreatedAt       time.Time `gorm:"not null;index"`
}

func (IntelligenceEvent) TableName() string {
	return "intelligence_behavior_events"
}
