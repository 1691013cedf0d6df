package model

import "time"

type SessionLead struct {
	SessionId string    `gorm:"type:varchar(128);primaryKey"`
	LeadId    string    `gorm:"type:varchar(64);primaryKey;index"`
	Source    string    `gorm:"type:varchar(16);not null"`
	BoundAt   time.Time `gorm:"not null"`
}

func (SessionLead) TableName() string {
	return "session_leads"
}
