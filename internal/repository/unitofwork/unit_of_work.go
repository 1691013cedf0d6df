package unitofwork

import (
	"context"

	"realestate-funnel-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserBehaviorRepository() contract.UserBehaviorRepository
	SessionLeadRepository() contract.SessionLeadRepository
	LeadRepository() contract.LeadRepository
	IntelligenceEventRepository() contract.IntelligenceEventRepository
}
