package implementation

import (
	"context"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/mapper"
	"realestate-funnel-be/internal/model"
	"realestate-funnel-be/internal/repository/contract"
	"realestate-funnel-be/internal/repository/specification"

	"gorm.io/gorm"
)

type IntelligenceEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IntelligenceEventMapper
}

func NewIntelligenceEventRepository(db *gorm.DB) contract.IntelligenceEventRepository {
	return &IntelligenceEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewIntelligenceEventMapper(),
	}
}

func (r *IntelligenceEventRepositoryImpl) Create(ctx context.Context, event *entity.IntelligenceEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *IntelligenceEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IntelligenceEvent, error) {
	var models []*model.IntelligenceEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
