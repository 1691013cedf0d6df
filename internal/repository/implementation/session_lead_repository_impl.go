package implementation

import (
	"context"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/mapper"
	"realestate-funnel-be/internal/model"
	"realestate-funnel-be/internal/repository/contract"
	"realestate-funnel-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionLeadRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionLeadMapper
}

func NewSessionLeadRepository(db *gorm.DB) contract.SessionLeadRepository {
	return &SessionLeadRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionLeadMapper(),
	}
}

func (r *SessionLeadRepositoryImpl) Link(ctx context.Context, link *entity.SessionLead) error {
	m := r.mapper.ToModel(link)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(m).Error
}

func (r *SessionLeadRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionLead, error) {
	var models []*model.SessionLead
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
