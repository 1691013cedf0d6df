package entity

import (
	"time"

	"github.com/google/uuid"
)

const FunnelStageNew = "new"

type Lead struct {
	Id                uuid.UUID
	FullName          string
	Email             *string
	Phone             *string
	Message           *string
	InterestType      *string
	PropertyId        *string
	PreferredLanguage string
	Source            *string
	FunnelStage       string
	SessionId         *string
	Extra             map[string]any
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}
