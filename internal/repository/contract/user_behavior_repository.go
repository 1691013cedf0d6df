package contract

import (
	"context"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/repository/specification"
)

// UserBehaviorRepository is append-only: there is no Update or Delete.
type UserBehaviorRepository interface {
	Create(ctx context.Context, behavior *entity.UserBehavior) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserBehavior, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
