package service

import (
	"context"
	"time"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/pkg/logger"
	"realestate-funnel-be/internal/repository/memory"
	"realestate-funnel-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IIntelligenceService stores events of the intelligence contract. They
// live in their own table and never mix with user_behaviors.
type IIntelligenceService interface {
	Track(ctx context.Context, req *dto.TrackIntelligenceRequest) (*dto.TrackBehaviorResponse, error)
}

type intelligenceService struct {
	uowFactory unitofwork.RepositoryFactory
	linker     *sessionLinker
	logger     logger.ILogger
	now        func() time.Time
}

func NewIntelligenceService(
	uowFactory unitofwork.RepositoryFactory,
	linkCache *memory.SessionLinkCache,
	log logger.ILogger,
) IIntelligenceService {
	return &intelligenceService{
		uowFactory: uowFactory,
		linker:     newSessionLinker(linkCache),
		logger:     log,
		now:        time.Now,
	}
}

func (s *intelligenceService) Track(ctx context.Context, req *dto.TrackIntelligenceRequest) (*dto.TrackBehaviorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var clientTime *time.Time
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		t := req.Timestamp.UTC()
		clientTime = &t
	}

	event := entity.IntelligenceEvent{
		Id:              uuid.New(),
		SessionId:       req.SessionId,
		LeadId:          nonEmpty(req.LeadId),
		EventType:       req.EventType,
		ElementId:       nonEmpty(req.ElementId),
		PropertyId:      nonEmpty(req.PropertyId),
		PageUrl:         req.PageUrl,
		Metadata:        req.Metadata,
		ClientTimestamp: clientTime,
		CreatedAt:       s.now().UTC(),
	}

	if err := uow.IntelligenceEventRepository().Create(ctx, &event); err != nil {
		return nil, err
	}

	if event.LeadId != nil {
		err := s.linker.link(ctx, uow.SessionLeadRepository(), event.SessionId, *event.LeadId, entity.SessionLinkSourceEvent, event.CreatedAt)
		if err != nil {
			s.logger.Warn("INTELLIGENCE", "Failed to record session link", map[string]interface{}{
				"session_id": event.SessionId,
				"error":      err.Error(),
			})
		}
	}

	return &dto.TrackBehaviorResponse{
		Id:        event.Id,
		CreatedAt: event.CreatedAt,
	}, nil
}
