package mapper

import (
	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/model"
)

type IntelligenceEventMapper struct{}

func NewIntelligenceEventMapper() *IntelligenceEventMapper {
	return &IntelligenceEventMapper{}
}

func (m *IntelligenceEventMapper) ToEntity(e *model.IntelligenceEvent) *entity.IntelligenceEvent {
	if e == nil {
		return nil
	}
	return &entity.IntelligenceEvent{
		Id:              e.Id,
		SessionId:       e.SessionId,
		LeadId:          e.LeadId,
		EventType:       e.EventType,
		ElementId:       e.ElementId,
		PropertyId:      e.PropertyId,
		PageUrl:         e.PageUrl,
		Metadata:        fromJSON(e.Metadata),
		ClientTimestamp: e.ClientTimestamp,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *IntelligenceEventMapper) ToModel(e *entity.IntelligenceEvent) *model.IntelligenceEvent {
	if e == nil {
		return nil
	}
	return &model.IntelligenceEvent{
		Id:              e.Id,
		SessionId:       e.SessionId,
		LeadId:          e.LeadId,
		EventType:       e.EventType,
		ElementId:       e.ElementId,
		PropertyId:      e.PropertyId,
		PageUrl:         e.PageUrl,
		Metadata:        toJSON(e.Metadata),
		ClientTimestamp: e.ClientTimestamp,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *IntelligenceEventMapper) ToEntities(events []*model.IntelligenceEvent) []*entity.IntelligenceEvent {
	entities := make([]*entity.IntelligenceEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
