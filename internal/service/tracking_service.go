// FILE: internal/service/tracking_service.go
package service

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/pkg/logger"
	"realestate-funnel-be/internal/repository/memory"
	"realestate-funnel-be/internal/repository/scope"
	"realestate-funnel-be/internal/repository/specification"
	"realestate-funnel-be/internal/repository/unitofwork"
	"realestate-funnel-be/internal/tracer"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/blake2b"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 500
)

type ITrackingService interface {
	Track(ctx context.Context, req *dto.TrackBehaviorRequest, meta dto.RequestMeta) (*dto.TrackBehaviorResponse, error)
	SessionEvents(ctx context.Context, sessionId string, page dto.PageQuery, window dto.EventWindow) (*dto.SessionEventsResponse, error)
	LeadTimeline(ctx context.Context, leadId string, page dto.PageQuery) (*dto.LeadTimelineResponse, error)
}

type trackingService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	linker           *sessionLinker
	ipHashSalt       string
	logger           logger.ILogger
	now              func() time.Time
}

func NewTrackingService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	linkCache *memory.SessionLinkCache,
	ipHashSalt string,
	log logger.ILogger,
) ITrackingService {
	return &trackingService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		linker:           newSessionLinker(linkCache),
		ipHashSalt:       ipHashSalt,
		logger:           log,
		now:              time.Now,
	}
}

// Track appends one behavior event. The id and creation time are always
// assigned here; nothing the client sends can set them.
func (s *trackingService) Track(ctx context.Context, req *dto.TrackBehaviorRequest, meta dto.RequestMeta) (*dto.TrackBehaviorResponse, error) {
	ctx, span := tracer.Start(ctx, "tracking.Track",
		attribute.String("behavior.type", req.BehaviorType),
		attribute.String("behavior.action", req.Action),
	)
	defer span.End()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = meta.UserAgent
	}

	behavior := entity.UserBehavior{
		Id:           uuid.New(),
		SessionId:    req.SessionId,
		LeadId:       nonEmpty(req.LeadId),
		BehaviorType: req.BehaviorType,
		Action:       req.Action,
		Target:       nonEmpty(req.Target),
		TargetId:     nonEmpty(req.TargetId),
		Metadata:     nonEmpty(req.Metadata),
		TimeSpent:    req.TimeSpent,
		ScrollDepth:  req.ScrollDepth,
		PageUrl:      req.PageUrl,
		UserAgent:    userAgent,
		IpHash:       hashIP(meta.ClientIP, s.ipHashSalt),
		CreatedAt:    s.now().UTC(),
	}

	if err := uow.UserBehaviorRepository().Create(ctx, &behavior); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if behavior.LeadId != nil {
		err := s.linker.link(ctx, uow.SessionLeadRepository(), behavior.SessionId, *behavior.LeadId, entity.SessionLinkSourceEvent, behavior.CreatedAt)
		if err != nil {
			s.logger.Warn("TRACKING", "Failed to record session link", map[string]interface{}{
				"session_id": behavior.SessionId,
				"lead_id":    *behavior.LeadId,
				"error":      err.Error(),
			})
		}
	}

	if s.publisherService != nil {
		err := s.publisherService.PublishBehaviorTracked(ctx, &dto.BehaviorTrackedMessage{
			Id:           behavior.Id,
			SessionId:    behavior.SessionId,
			LeadId:       behavior.LeadId,
			BehaviorType: behavior.BehaviorType,
			Action:       behavior.Action,
			PageUrl:      behavior.PageUrl,
			CreatedAt:    behavior.CreatedAt,
		})
		if err != nil {
			s.logger.Warn("TRACKING", "Failed to publish behavior", map[string]interface{}{
				"behavior_id": behavior.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	return &dto.TrackBehaviorResponse{
		Id:        behavior.Id,
		CreatedAt: behavior.CreatedAt,
	}, nil
}

// SessionEvents pages through one session's events in server order,
// optionally limited to a creation-time window.
func (s *trackingService) SessionEvents(ctx context.Context, sessionId string, page dto.PageQuery, window dto.EventWindow) (*dto.SessionEventsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page = normalizePage(page)

	filters := []specification.Specification{specification.BySessionID{SessionID: sessionId}}
	if !window.IsZero() {
		filters = append(filters, specification.CreatedBetween{From: window.From, To: window.To})
	}

	total, err := uow.UserBehaviorRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	behaviors, err := uow.UserBehaviorRepository().FindAll(ctx, append(filters,
		specification.WithScopes{scope.OrderByCreatedAsc},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset},
	)...)
	if err != nil {
		return nil, err
	}

	return &dto.SessionEventsResponse{
		SessionId: sessionId,
		Events:    toBehaviorResponses(behaviors),
		Total:     total,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}, nil
}

// LeadTimeline returns the behavior and intelligence events of a lead in
// server order, including anonymous events of every session linked to it.
func (s *trackingService) LeadTimeline(ctx context.Context, leadId string, page dto.PageQuery) (*dto.LeadTimelineResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	page = normalizePage(page)

	links, err := uow.SessionLeadRepository().FindAll(ctx,
		specification.ByLeadID{LeadID: leadId},
		specification.OrderBy{Field: "bound_at"},
	)
	if err != nil {
		return nil, err
	}
	sessions := make([]string, 0, len(links))
	for _, l := range links {
		sessions = append(sessions, l.SessionId)
	}

	filter := specification.LeadTimeline{LeadID: leadId}
	total, err := uow.UserBehaviorRepository().Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	ordered := specification.WithScopes{scope.OrderByCreatedAsc}
	window := specification.Pagination{Limit: page.Limit, Offset: page.Offset}

	behaviors, err := uow.UserBehaviorRepository().FindAll(ctx, filter, ordered, window)
	if err != nil {
		return nil, err
	}

	intelligence, err := uow.IntelligenceEventRepository().FindAll(ctx, filter, ordered, window)
	if err != nil {
		return nil, err
	}

	return &dto.LeadTimelineResponse{
		LeadId:       leadId,
		Sessions:     sessions,
		Events:       toBehaviorResponses(behaviors),
		Intelligence: toIntelligenceResponses(intelligence),
		Total:        total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}, nil
}

func toBehaviorResponses(behaviors []*entity.UserBehavior) []*dto.BehaviorEventResponse {
	out := make([]*dto.BehaviorEventResponse, 0, len(behaviors))
	for _, b := range behaviors {
		out = append(out, &dto.BehaviorEventResponse{
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
			CreatedAt:    b.CreatedAt,
		})
	}
	return out
}

func toIntelligenceResponses(events []*entity.IntelligenceEvent) []*dto.IntelligenceEventResponse {
	out := make([]*dto.IntelligenceEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, &dto.IntelligenceEventResponse{
			Id:              e.Id,
			SessionId:       e.SessionId,
			LeadId:          e.LeadId,
			EventType:       e.EventType,
			ElementId:       e.ElementId,
			PropertyId:      e.PropertyId,
			PageUrl:         e.PageUrl,
			Metadata:        e.Metadata,
			ClientTimestamp: e.ClientTimestamp,
			CreatedAt:       e.CreatedAt,
		})
	}
	return out
}

func normalizePage(page dto.PageQuery) dto.PageQuery {
	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}

// hashIP keeps raw client addresses out of storage.
func hashIP(ip, salt string) *string {
	if ip == "" {
		return nil
	}
	sum := blake2b.Sum256([]byte(salt + ip))
	h := hex.EncodeToString(sum[:])
	return &h
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
