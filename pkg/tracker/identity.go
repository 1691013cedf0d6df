package tracker

import (
	"encoding/binary"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	sessionIDKey       = "funnel_session_id"
	leadIDKey          = "funnel_lead_id"
	lastVisitKeyPrefix = "last_visit_"

	sessionSuffixLen = 9
)

// IdentityStore owns the visitor's session id, bound lead id and per-route
// last-visit markers.
//
// Storage errors never reach the caller: the store keeps working from memory
// for the rest of its lifetime and logs a warning. A fresh store over broken
// storage therefore mints a new session id.
type IdentityStore struct {
	sessionStorage Storage
	localStorage   Storage
	clock          Clock
	logger         Logger

	mu         sync.Mutex
	sessionID  string
	leadID     string
	leadLoaded bool
	visits     map[string]time.Time
}

// NewIdentityStore creates a store. sessionStorage holds the tab-scoped session
// id, localStorage the lead id and last-visit markers.
func NewIdentityStore(sessionStorage, localStorage Storage, clock Clock, logger Logger) *IdentityStore {
	if sessionStorage == nil {
		sessionStorage = NewMemoryStorage()
	}
	if localStorage == nil {
		localStorage = NewMemoryStorage()
	}
	if clock == nil {
		clock = systemClock{}
	}
	if logger == nil {
		logger = noopLogger{}
	}
	return &IdentityStore{
		sessionStorage: sessionStorage,
		localStorage:   localStorage,
		clock:          clock,
		logger:         logger,
		visits:         make(map[string]time.Time),
	}
}

// SessionID returns the persisted session id, generating and persisting one on
// first use.
func (s *IdentityStore) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessionID != "" {
		return s.sessionID
	}

	stored, ok, err := s.sessionStorage.Get(sessionIDKey)
	if err != nil {
		s.logger.Warn("session storage unavailable, using in-memory session: %v", err)
	} else if ok && stored != "" {
		s.sessionID = stored
		return s.sessionID
	}

	s.sessionID = newSessionID(s.clock.Now())
	if err == nil {
		if setErr := s.sessionStorage.Set(sessionIDKey, s.sessionID); setErr != nil {
			s.logger.Warn("failed to persist session id: %v", setErr)
		}
	}
	return s.sessionID
}

// LeadID returns the bound lead id, if any.
func (s *IdentityStore) LeadID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.leadLoaded {
		stored, ok, err := s.localStorage.Get(leadIDKey)
		if err != nil {
			s.logger.Warn("local storage unavailable, lead id not restored: %v", err)
		} else if ok {
			s.leadID = stored
		}
		s.leadLoaded = true
	}
	return s.leadID, s.leadID != ""
}

// SetLeadID binds id to the visitor, replacing any previous lead.
func (s *IdentityStore) SetLeadID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leadID = id
	s.leadLoaded = true
	if err := s.localStorage.Set(leadIDKey, id); err != nil {
		s.logger.Warn("failed to persist lead id: %v", err)
	}
}

// LastVisit returns the last recorded visit to route.
func (s *IdentityStore) LastVisit(route string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.visits[route]; ok {
		return t, true
	}

	stored, ok, err := s.localStorage.Get(lastVisitKeyPrefix + route)
	if err != nil {
		s.logger.Warn("local storage unavailable, last visit not restored: %v", err)
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		s.logger.Warn("ignoring malformed last-visit marker for %s: %q", route, stored)
		return time.Time{}, false
	}
	t := time.UnixMilli(millis)
	s.visits[route] = t
	return t, true
}

// MarkVisit overwrites the last-visit marker of route.
func (s *IdentityStore) MarkVisit(route string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits[route] = at
	if err := s.localStorage.Set(lastVisitKeyPrefix+route, strconv.FormatInt(at.UnixMilli(), 10)); err != nil {
		s.logger.Warn("failed to persist last visit for %s: %v", route, err)
	}
}

// newSessionID builds "<unix millis>-<base36 suffix>".
func newSessionID(now time.Time) string {
	u := uuid.New()
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(u[8:]), 36)
	for len(suffix) < sessionSuffixLen {
		suffix = "0" + suffix
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix[:sessionSuffixLen]
}
