package contract

import (
	"context"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/repository/specification"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error)
}
