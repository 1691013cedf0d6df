package dto

import "github.com/google/uuid"

type CreateLeadRequest struct {
	FullName          string         `json:"fullName" validate:"required,max=255"`
	Email             string         `json:"email" validate:"required_without=Phone,omitempty,email,max=255"`
	Phone             string         `json:"phone" validate:"required_without=Email,omitempty,max=32"`
	Message           string         `json:"message" validate:"max=4000"`
	InterestType      string         `json:"interestType" validate:"omitempty,oneof=buy rent sell invest other"`
	PropertyId        string         `json:"propertyId" validate:"max=64"`
	PreferredLanguage string         `json:"preferredLanguage" validate:"omitempty,oneof=ar en"`
	Source            string         `json:"source" validate:"max=64"`
	SessionId         string         `json:"sessionId" validate:"max=128"`
	Extra             map[string]any `json:"extra"`
}

type CreateLeadResponse struct {
	Id          uuid.UUID `json:"id"`
	FunnelStage string    `json:"funnelStage"`
}
