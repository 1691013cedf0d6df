package mapper

import (
	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/model"
)

type UserBehaviorMapper struct{}

func NewUserBehaviorMapper() *UserBehaviorMapper {
	return &UserBehaviorMapper{}
}

func (m *UserBehaviorMapper) ToEntity(b *model.UserBehavior) *entity.UserBehavior {
	if b == nil {
		return nil
	}
	return &entity.UserBehavior{
		Id:           b.Id,
		SessionId:    b.SessionId,
		LeadId:       b.LeadId,
		BehaviorType: b.BehaviorType,
		Action:       b.Action,
		Target:       b.Target,
		TargetId:     b.TargetId,
		Metadata:     b.Metadata,
		TimeSpent:    b.TimeSpent,
		ScrollDepth:  b.ScrollDepth,
		PageUrl:      b.PageUrl,
		UserAgent:    b.UserAgent,
		IpHash:       b.IpHash,
		CreatedAt:    b.CreatedAt,
	}
}

func (m *UserBehaviorMapper) ToModel(b *entity.UserBehavior) *model.UserBehavior {
	if b == nil {
		return nil
	}
	return &model.UserBehavior{
		Id:           b.Id,
		SessionId:    b.SessionId,
		LeadId:       b.LeadId,
		BehaviorType: b.BehaviorType,
		Action:       b.Action,
		Target:       b.Target,
		TargetId:     b.TargetId,
		Metadata:     b.Metadata,
		TimeSpent:    b.TimeSpent,
		ScrollDepth:  b.ScrollDepth,
		PageUrl:      b.PageUrl,
		UserAgent:    b.UserAgent,
		IpHash:       b.IpHash,
		CreatedAt:    b.CreatedAt,
	}
}

func (m *UserBehaviorMapper) ToEntities(behaviors []*model.UserBehavior) []*entity.UserBehavior {
	entities := make([]*entity.UserBehavior, len(behaviors))
	for i, b := range behaviors {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
