package model

import (
	"time"

	"github.com/google/uuid"
)

// UserBehavior is append-only. Rows are never updated or deleted.
type UserBehavior struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    string    `gorm:"type:varchar(128);not null;index"`
	LeadId       *string   `gorm:"type:varchar(64);index"`
	BehaviorType string    `gorm:"type:varchar(64);not null;index"`
	Action       string    `gorm:"type:varchar(128);not null"`
	Target       *string   `gorm:"type:varchar(255)"`
	TargetId     *string   `gorm:"type:varchar(255)"`
	Metadata     *string   `gorm:"type:text"`
	TimeSpent    *int      `gorm:"type:integer"`
	ScrollDepth  *float64  `gorm:"type:double precision"`
	PageUrl      string    `gorm:"type:text"`
	UserAgent    string    `gorm:"type:text"`
	IpHash       *string   `gorm:"type:varchar(64)"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (UserBehavior) TableName() string {
	return "user_behaviors"
}
