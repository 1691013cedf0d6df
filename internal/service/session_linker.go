package service

import (
	"context"
	"time"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/repository/contract"
	"realestate-funnel-be/internal/repository/memory"
)

// sessionLinker records (session, lead) bindings, writing each pair once
// per process lifetime of the cache.
type sessionLinker struct {
	cache *memory.SessionLinkCache
}

func newSessionLinker(cache *memory.SessionLinkCache) *sessionLinker {
	if cache == nil {
		cache = memory.NewSessionLinkCache()
	}
	return &sessionLinker{cache: cache}
}

func (l *sessionLinker) link(ctx context.Context, repo contract.SessionLeadRepository, sessionID, leadID, source string, at time.Time) error {
	if sessionID == "" || leadID == "" || l.cache.Seen(sessionID, leadID) {
		return nil
	}
	err := repo.Link(ctx, &entity.SessionLead{
		SessionId: sessionID,
		LeadId:    leadID,
		Source:    source,
		BoundAt:   at,
	})
	if err != nil {
		return err
	}
	l.cache.Remember(sessionID, leadID)
	return nil
}

func (l *sessionLinker) remember(sessionID, leadID string) {
	l.cache.Remember(sessionID, leadID)
}
