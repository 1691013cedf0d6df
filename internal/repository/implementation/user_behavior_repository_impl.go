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

type UserBehaviorRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserBehaviorMapper
}

func NewUserBehaviorRepository(db *gorm.DB) contract.UserBehaviorRepository {
	return &UserBehaviorRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserBehaviorMapper(),
	}
}

func (r *UserBehaviorRepositoryImpl) Create(ctx context.Context, behavior *entity.UserBehavior) error {
	m := r.mapper.ToModel(behavior)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*behavior = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserBehaviorRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserBehavior, error) {
	var models []*model.UserBehavior
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserBehaviorRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.UserBehavior{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
