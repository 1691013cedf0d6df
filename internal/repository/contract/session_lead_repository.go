package contract

import (
	"context"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/repository/specification"
)

type SessionLeadRepository interface {
	// Link records the binding; an existing (session, lead) pair is left untouched.
	Link(ctx context.Context, link *entity.SessionLead) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionLead, error)
}
