package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"realestate-funnel-be/internal/entity"
	"realestate-funnel-be/internal/pkg/mailer"
	"realestate-funnel-be/internal/repository/contract"
	"realestate-funnel-be/internal/repository/specification"
	"realestate-funnel-be/internal/repository/unitofwork"
	"realestate-funnel-be/pkg/events"

	"github.com/google/uuid"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// memStore is an in-memory database shared by every unit of work of a test.
type memStore struct {
	mu        sync.Mutex
	behaviors []*entity.UserBehavior
	links     []*entity.SessionLead
	leads     []*entity.Lead
	intel     []*entity.IntelligenceEvent

	linkWrites int
	commits    int
	rollbacks  int

	failBehaviorCreate error
	failLink           error
	failLeadCreate     error
}

func (s *memStore) Factory() unitofwork.RepositoryFactory { return fakeFactory{store: s} }

func (s *memStore) Links() []*entity.SessionLead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.SessionLead(nil), s.links...)
}

func (s *memStore) Leads() []*entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.Lead(nil), s.leads...)
}

type fakeFactory struct{ store *memStore }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{store: f.store}
}

// fakeUoW buffers writes while a transaction is open.
type fakeUoW struct {
	store   *memStore
	inTx    bool
	pending []func(*memStore)
}

func (u *fakeUoW) Begin(ctx context.Context) error {
	if u.inTx {
		return errors.New("transaction already started")
	}
	u.inTx = true
	return nil
}

func (u *fakeUoW) Commit() error {
	if !u.inTx {
		return errors.New("no transaction to commit")
	}
	u.store.mu.Lock()
	for _, op := range u.pending {
		op(u.store)
	}
	u.store.commits++
	u.store.mu.Unlock()
	u.pending = nil
	u.inTx = false
	return nil
}

func (u *fakeUoW) Rollback() error {
	if !u.inTx {
		return errors.New("no transaction to rollback")
	}
	u.store.mu.Lock()
	u.store.rollbacks++
	u.store.mu.Unlock()
	u.pending = nil
	u.inTx = false
	return nil
}

func (u *fakeUoW) write(op func(*memStore)) {
	if u.inTx {
		u.pending = append(u.pending, op)
		return
	}
	u.store.mu.Lock()
	op(u.store)
	u.store.mu.Unlock()
}

func (u *fakeUoW) UserBehaviorRepository() contract.UserBehaviorRepository {
	return &fakeBehaviorRepo{uow: u}
}

func (u *fakeUoW) SessionLeadRepository() contract.SessionLeadRepository {
	return &fakeSessionLeadRepo{uow: u}
}

func (u *fakeUoW) LeadRepository() contract.LeadRepository {
	return &fakeLeadRepo{uow: u}
}

func (u *fakeUoW) IntelligenceEventRepository() contract.IntelligenceEventRepository {
	return &fakeIntelligenceRepo{uow: u}
}

type fakeBehaviorRepo struct{ uow *fakeUoW }

func (r *fakeBehaviorRepo) Create(ctx context.Context, b *entity.UserBehavior) error {
	if err := r.uow.store.failBehaviorCreate; err != nil {
		return err
	}
	stored := *b
	r.uow.write(func(s *memStore) { s.behaviors = append(s.behaviors, &stored) })
	return nil
}

func (r *fakeBehaviorRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserBehavior, error) {
	matched := r.match(specs)
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			matched = paginate(matched, p)
		}
	}
	return matched, nil
}

func (r *fakeBehaviorRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.match(specs))), nil
}

// match understands the filter specifications the services use and always
// returns rows in created_at order.
func (r *fakeBehaviorRepo) match(specs []specification.Specification) []*entity.UserBehavior {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.UserBehavior
	for _, b := range s.behaviors {
		ok := true
		for _, spec := range specs {
			switch f := spec.(type) {
			case specification.BySessionID:
				ok = ok && b.SessionId == f.SessionID
			case specification.ByLeadID:
				ok = ok && b.LeadId != nil && *b.LeadId == f.LeadID
			case specification.LeadTimeline:
				ok = ok && inTimeline(s.links, b.SessionId, b.LeadId, f.LeadID)
			case specification.CreatedBetween:
				ok = ok && inWindow(b.CreatedAt, f)
			}
		}
		if ok {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func inTimeline(links []*entity.SessionLead, sessionID string, eventLead *string, leadID string) bool {
	if eventLead != nil {
		return *eventLead == leadID
	}
	return linked(links, sessionID, leadID)
}

func inWindow(at time.Time, w specification.CreatedBetween) bool {
	if !w.From.IsZero() && at.Before(w.From) {
		return false
	}
	return w.To.IsZero() || at.Before(w.To)
}

func linked(links []*entity.SessionLead, sessionID, leadID string) bool {
	for _, l := range links {
		if l.SessionId == sessionID && l.LeadId == leadID {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, p specification.Pagination) []T {
	if p.Offset >= len(items) {
		return nil
	}
	items = items[p.Offset:]
	if p.Limit > 0 && p.Limit < len(items) {
		items = items[:p.Limit]
	}
	return items
}

type fakeSessionLeadRepo struct{ uow *fakeUoW }

func (r *fakeSessionLeadRepo) Link(ctx context.Context, l *entity.SessionLead) error {
	if err := r.uow.store.failLink; err != nil {
		return err
	}
	stored := *l
	r.uow.write(func(s *memStore) {
		s.linkWrites++
		if !linked(s.links, stored.SessionId, stored.LeadId) {
			s.links = append(s.links, &stored)
		}
	})
	return nil
}

func (r *fakeSessionLeadRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionLead, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.SessionLead
	for _, l := range s.links {
		ok := true
		for _, spec := range specs {
			if f, isLead := spec.(specification.ByLeadID); isLead {
				ok = ok && l.LeadId == f.LeadID
			}
		}
		if ok {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeLeadRepo struct{ uow *fakeUoW }

func (r *fakeLeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	if err := r.uow.store.failLeadCreate; err != nil {
		return err
	}
	l.Id = uuid.New()
	l.CreatedAt = fixedNow
	stored := *l
	r.uow.write(func(s *memStore) { s.leads = append(s.leads, &stored) })
	return nil
}

func (r *fakeLeadRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lead, error) {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, spec := range specs {
		if f, ok := spec.(specification.ByID); ok {
			for _, l := range s.leads {
				if l.Id == f.ID {
					return l, nil
				}
			}
		}
	}
	return nil, nil
}

type fakeIntelligenceRepo struct{ uow *fakeUoW }

func (r *fakeIntelligenceRepo) Create(ctx context.Context, e *entity.IntelligenceEvent) error {
	stored := *e
	r.uow.write(func(s *memStore) { s.intel = append(s.intel, &stored) })
	return nil
}

func (r *fakeIntelligenceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.IntelligenceEvent, error) {
	s := r.uow.store
	s.mu.Lock()
	var out []*entity.IntelligenceEvent
	for _, e := range s.intel {
		ok := true
		for _, spec := range specs {
			switch f := spec.(type) {
			case specification.BySessionID:
				ok = ok && e.SessionId == f.SessionID
			case specification.LeadTimeline:
				ok = ok && inTimeline(s.links, e.SessionId, e.LeadId, f.LeadID)
			}
		}
		if ok {
			out = append(out, e)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			out = paginate(out, p)
		}
	}
	return out, nil
}

type fakeMailer struct {
	sent chan mailer.LeadNotification
	to   chan string
	err  error
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{
		sent: make(chan mailer.LeadNotification, 4),
		to:   make(chan string, 4),
	}
}

func (m *fakeMailer) SendLeadNotification(toEmail string, lead mailer.LeadNotification) error {
	m.to <- toEmail
	m.sent <- lead
	return m.err
}

type fakeBus struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (b *fakeBus) Publish(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, event)
	return nil
}

func (b *fakeBus) Events() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event(nil), b.events...)
}

type fakeCounter struct {
	mu       sync.Mutex
	counts   map[string]map[string]int64
	err      error
	snapshot error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]map[string]int64{}}
}

func (c *fakeCounter) Increment(ctx context.Context, day, field string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if c.counts[day] == nil {
		c.counts[day] = map[string]int64{}
	}
	c.counts[day][field]++
	return nil
}

func (c *fakeCounter) Snapshot(ctx context.Context, day string) (map[string]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot != nil {
		return nil, c.snapshot
	}
	out := map[string]int64{}
	for k, v := range c.counts[day] {
		out[k] = v
	}
	return out, nil
}

func (c *fakeCounter) Get(day, field string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[day][field]
}
