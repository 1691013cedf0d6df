package mapper

import (
	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/model"
)

type SessionLeadMapper struct{}

func NewSessionLeadMapper() *SessionLeadMapper {
	return &SessionLeadMapper{}
}

func (m *SessionLeadMapper) ToEntity(l *model.SessionLead) *entity.SessionLead {
	if l == nil {
		return nil
	}
	return &entity.SessionLead{
		SessionId: l.SessionId,
		LeadId:    l.LeadId,
		Source:    l.Source,
		BoundAt:   l.BoundAt,
	}
}

func (m *SessionLeadMapper) ToModel(l *entity.SessionLead) *model.SessionLead {
	if l == nil {
		return nil
	}
	return &model.SessionLead{
		SessionId: l.SessionId,
		LeadId:    l.LeadId,
		Source:    l.Source,
		BoundAt:   l.BoundAt,
	}
}

func (m *SessionLeadMapper) ToEntities(links []*model.SessionLead) []*entity.SessionLead {
	entities := make([]*entity.SessionLead, len(links))
	for i, l := range links {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
