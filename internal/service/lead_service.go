// FILE: internal/service/lead_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/pkg/logger"
	"realestate-funnel-be/internal/pkg/mailer"
	"realestate-funnel-be/internal/repository/memory"
	"realestate-funnel-be/internal/repository/unitofwork"
	"realestate-funnel-be/internal/tracer"
	"realestate-funnel-be/pkg/events"

	"go.opentelemetry.io/otel/attribute"
)

const defaultPreferredLanguage = "ar"

type ILeadService interface {
	Create(ctx context.Context, req *dto.CreateLeadRequest) (*dto.CreateLeadResponse, error)
}

type leadService struct {
	uowFactory   unitofwork.RepositoryFactory
	linker       *sessionLinker
	emailService mailer.IEmailService
	salesInbox   string
	bus          EventPublisher
	logger       logger.ILogger
	now          func() time.Time

	notifications sync.WaitGroup
}

// NewLeadService creates the lead service. emailService and bus are optional;
// an empty salesInbox disables notifications.
func NewLeadService(
	uowFactory unitofwork.RepositoryFactory,
	linkCache *memory.SessionLinkCache,
	emailService mailer.IEmailService,
	salesInbox string,
	bus EventPublisher,
	log logger.ILogger,
) ILeadService {
	return &leadService{
		uowFactory:   uowFactory,
		linker:       newSessionLinker(linkCache),
		emailService: emailService,
		salesInbox:   salesInbox,
		bus:          bus,
		logger:       log,
		now:          time.Now,
	}
}

// Create stores the lead and its form binding to the submitting session in
// one transaction. Notification and bus delivery never fail the request.
func (s *leadService) Create(ctx context.Context, req *dto.CreateLeadRequest) (*dto.CreateLeadResponse, error) {
	ctx, span := tracer.Start(ctx, "lead.Create", attribute.String("lead.interest_type", req.InterestType))
	defer span.End()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = uow.Rollback()
		}
	}()

	language := req.PreferredLanguage
	if language == "" {
		language = defaultPreferredLanguage
	}

	lead := entity.Lead{
		FullName:          strings.TrimSpace(req.FullName),
		Email:             optionalString(req.Email),
		Phone:             optionalString(req.Phone),
		Message:           optionalString(req.Message),
		InterestType:      optionalString(req.InterestType),
		PropertyId:        optionalString(req.PropertyId),
		PreferredLanguage: language,
		Source:            optionalString(req.Source),
		FunnelStage:       entity.FunnelStageNew,
		SessionId:         optionalString(req.SessionId),
		Extra:             req.Extra,
	}

	if err := uow.LeadRepository().Create(ctx, &lead); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create lead: %w", err)
	}

	leadId := lead.Id.String()
	if lead.SessionId != nil {
		err := uow.SessionLeadRepository().Link(ctx, &entity.SessionLead{
			SessionId: *lead.SessionId,
			LeadId:    leadId,
			Source:    entity.SessionLinkSourceForm,
			BoundAt:   s.now().UTC(),
		})
		if err != nil {
			return nil, fmt.Errorf("link session to lead: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	committed = true

	if lead.SessionId != nil {
		s.linker.remember(*lead.SessionId, leadId)
	}

	s.logger.Info("LEAD", "Lead created", map[string]interface{}{
		"lead_id":       leadId,
		"interest_type": req.InterestType,
		"has_session":   lead.SessionId != nil,
	})

	s.notify(lead)
	s.publish(ctx, lead)

	return &dto.CreateLeadResponse{
		Id:          lead.Id,
		FunnelStage: lead.FunnelStage,
	}, nil
}

func (s *leadService) notify(lead entity.Lead) {
	if s.emailService == nil || s.salesInbox == "" {
		return
	}

	n := mailer.LeadNotification{
		LeadID:            lead.Id.String(),
		FullName:          lead.FullName,
		Email:             deref(lead.Email),
		Phone:             deref(lead.Phone),
		InterestType:      deref(lead.InterestType),
		PropertyID:        deref(lead.PropertyId),
		PreferredLanguage: lead.PreferredLanguage,
		Message:           deref(lead.Message),
		Source:            deref(lead.Source),
	}

	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()
		if err := s.emailService.SendLeadNotification(s.salesInbox, n); err != nil {
			s.logger.Error("LEAD", "Failed to send lead notification", map[string]interface{}{
				"lead_id": n.LeadID,
				"error":   err.Error(),
			})
		}
	}()
}

func (s *leadService) publish(ctx context.Context, lead entity.Lead) {
	if s.bus == nil {
		return
	}
	event := events.NewLeadCreated(
		lead.Id.String(),
		deref(lead.SessionId),
		deref(lead.InterestType),
		deref(lead.PropertyId),
		deref(lead.Source),
		lead.CreatedAt,
	)
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("LEAD", "Failed to publish lead event", map[string]interface{}{
			"lead_id": lead.Id.String(),
			"error":   err.Error(),
		})
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
