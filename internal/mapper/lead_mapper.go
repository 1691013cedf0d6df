package mapper

import (
	"time"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(l *model.Lead) *entity.Lead {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Lead{
		Id:                l.Id,
		FullName:          l.FullName,
		Email:             l.Email,
		Phone:             l.Phone,
		Message:           l.Message,
		InterestType:      l.InterestType,
		PropertyId:        l.PropertyId,
		PreferredLanguage: l.PreferredLanguage,
		Source:            l.Source,
		FunnelStage:       l.FunnelStage,
		SessionId:         l.SessionId,
		Extra:             fromJSON(l.Extra),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}

func (m *LeadMapper) ToModel(l *entity.Lead) *model.Lead {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Lead{
		Id:                l.Id,
		FullName:          l.FullName,
		Email:             l.Email,
		Phone:             l.Phone,
		Message:           l.Message,
		InterestType:      l.InterestType,
		PropertyId:        l.PropertyId,
		PreferredLanguage: l.PreferredLanguage,
		Source:            l.Source,
		FunnelStage:       l.FunnelStage,
		SessionId:         l.SessionId,
		Extra:             toJSON(l.Extra),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         updatedAt,
	}
}
