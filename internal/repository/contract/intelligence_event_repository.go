package contract

import (
	"context"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/repository/specification"
)

type IntelligenceEventRepository interface {
	Create(ctx context.Context, event *entity.IntelligenceEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IntelligenceEvent, error)
}
