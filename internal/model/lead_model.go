package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lead struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName          string         `gorm:"type:varchar(255);not null"`
	Email             *string        `gorm:"type:varchar(255);index"`
	Phone             *string        `gorm:"type:varchar(32)"`
	Message           *string        `gorm:"type:text"`
	InterestType      *string        `gorm:"type:varchar(16)"`
	PropertyId        *string        `gorm:"type:varchar(64);index"`
	PreferredLanguage string         `gorm:"type:varchar(2);not null;default:'ar'"`
	Source            *string        `gorm:"type:varchar(64)"`
	FunnelStage       string         `gorm:"type:varchar(32);not null;default:'new'"`
	SessionId         *string        `gorm:"type:varchar(128);index"`
	Extra             datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
