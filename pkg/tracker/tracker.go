package tracker

import (
	"errors"
	"strings"
	"sync"
	"time"
)

const defaultRequestTimeout = 10 * time.Second

// Config configures a Tracker.
type Config struct {
	// BaseURL is the backend origin, e.g. "https://api.example.com".
	BaseURL string
	// SiteURL is the public site origin used to build page URLs.
	SiteURL   string
	UserAgent string

	// SessionStorage is tab-scoped; LocalStorage outlives it.
	// Both default to in-memory storage.
	SessionStorage Storage
	LocalStorage   Storage

	Transport      Transport
	Logger         Logger
	Clock          Clock
	RequestTimeout time.Duration
}

// Tracker is the tracking context of one visitor. Construct it once and pass
// it to whatever renders pages or handles forms.
type Tracker struct {
	baseURL  string
	siteURL  string
	clock    Clock
	logger   Logger
	identity *IdentityStore
	emitter  *Emitter
	client   Transport
	timeout  time.Duration

	pageMu      sync.RWMutex
	currentPath string
}

// New creates a Tracker.
func New(cfg Config) (*Tracker, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("BaseURL is required")
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = NewHTTPTransport(cfg.RequestTimeout, nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	if cfg.Clock == nil {
		cfg.Clock = systemClock{}
	}

	t := &Tracker{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		siteURL:     strings.TrimRight(cfg.SiteURL, "/"),
		clock:       cfg.Clock,
		logger:      cfg.Logger,
		identity:    NewIdentityStore(cfg.SessionStorage, cfg.LocalStorage, cfg.Clock, cfg.Logger),
		client:      cfg.Transport,
		timeout:     cfg.RequestTimeout,
		currentPath: "/",
	}
	t.emitter = newEmitter(t.baseURL, cfg.Transport, t.identity, t.PageURL, cfg.UserAgent, cfg.RequestTimeout, cfg.Logger)
	return t, nil
}

// SessionID returns the visitor's session id.
func (t *Tracker) SessionID() string {
	return t.identity.SessionID()
}

// LeadID returns the lead bound to this visitor, if any.
func (t *Tracker) LeadID() (string, bool) {
	return t.identity.LeadID()
}

// PageURL returns the URL of the page currently entered.
func (t *Tracker) PageURL() string {
	t.pageMu.RLock()
	defer t.pageMu.RUnlock()
	return t.urlFor(t.currentPath)
}

func (t *Tracker) urlFor(route string) string {
	return t.siteURL + route
}

// Track sends a behavior event.
func (t *Tracker) Track(in BehaviorInput) {
	t.emitter.Track(in)
}

// EnterPage starts a page view of route: it emits view_page, reports a return
// visit when the route was last seen more than 30 minutes ago, and refreshes
// the route's last-visit marker.
func (t *Tracker) EnterPage(route string) *PageView {
	now := t.clock.Now()

	t.pageMu.Lock()
	t.currentPath = route
	t.pageMu.Unlock()

	view := &PageView{tracker: t, route: route, start: now}

	t.Track(BehaviorInput{
		BehaviorType: BehaviorPageView,
		Action:       ActionViewPage,
		Metadata: map[string]any{
			"path":      route,
			"timestamp": now.UTC().Format(time.RFC3339Nano),
		},
	})

	if last, ok := t.identity.LastVisit(route); ok {
		if gap := now.Sub(last); gap > returnVisitGap {
			t.Track(BehaviorInput{
				BehaviorType: BehaviorEngagement,
				Action:       ActionReturnVisit,
				Metadata: map[string]any{
					"path":               route,
					"timeSinceLastVisit": int(gap / time.Second),
				},
			})
		}
	}
	t.identity.MarkVisit(route, now)

	return view
}

// BindLead attaches leadID to the visitor. Every event tracked afterwards
// carries it; events already sent are left as they were.
func (t *Tracker) BindLead(leadID string) {
	if leadID == "" {
		t.logger.Warn("ignoring empty lead id")
		return
	}
	t.identity.SetLeadID(leadID)
	t.Track(BehaviorInput{
		BehaviorType: BehaviorFormInteraction,
		Action:       ActionSubmitForm,
		Metadata:     map[string]any{"leadId": leadID},
	})
}

// TrackFormInteraction reports an interaction with a form field, e.g. field_focus.
func (t *Tracker) TrackFormInteraction(formName, action, field string) {
	var metadata map[string]any
	if field != "" {
		metadata = map[string]any{"field": field}
	}
	t.Track(BehaviorInput{
		BehaviorType: BehaviorFormInteraction,
		Action:       action,
		Target:       formName,
		Metadata:     metadata,
	})
}

// TrackCTAClick reports a click on a call to action as click_<cta>.
func (t *Tracker) TrackCTAClick(cta, targetID string, metadata map[string]any) {
	t.Track(BehaviorInput{
		BehaviorType: BehaviorCTAInteraction,
		Action:       "click_" + cta,
		Target:       cta,
		TargetID:     targetID,
		Metadata:     metadata,
	})
}

// TrackToolUsage reports use of an on-site tool such as search filters or the
// mortgage calculator.
func (t *Tracker) TrackToolUsage(tool, action string, metadata map[string]any) {
	t.Track(BehaviorInput{
		BehaviorType: BehaviorToolUsage,
		Action:       action,
		Target:       tool,
		Metadata:     metadata,
	})
}

// TrackContentInteraction reports interaction with a listing, article or
// market report.
func (t *Tracker) TrackContentInteraction(contentType, contentID, action string) {
	t.Track(BehaviorInput{
		BehaviorType: BehaviorContentInteraction,
		Action:       action,
		Target:       contentType,
		TargetID:     contentID,
	})
}

// TrackTrustSignal reports exposure to testimonials, licences and the like.
func (t *Tracker) TrackTrustSignal(signal, action string) {
	t.Track(BehaviorInput{
		BehaviorType: BehaviorTrustSignal,
		Action:       action,
		Target:       signal,
	})
}

// TrackNavigation reports an in-site navigation.
func (t *Tracker) TrackNavigation(from, to string) {
	t.Track(BehaviorInput{
		BehaviorType: BehaviorNavigation,
		Action:       ActionNavigate,
		Target:       to,
		Metadata:     map[string]any{"from": from, "to": to},
	})
}

// TrackIntelligence reports ev on the separate intelligence stream.
func (t *Tracker) TrackIntelligence(ev IntelligenceEvent) {
	if ev.EventType == "" {
		t.logger.Warn("dropping intelligence event without type")
		return
	}
	payload := IntelligencePayload{
		SessionID:  t.identity.SessionID(),
		EventType:  ev.EventType,
		ElementID:  optional(ev.ElementID),
		PropertyID: optional(ev.PropertyID),
		PageURL:    t.PageURL(),
		Metadata:   ev.Metadata,
		Timestamp:  t.clock.Now().UTC().Format(time.RFC3339Nano),
	}
	if leadID, ok := t.identity.LeadID(); ok {
		payload.LeadID = &leadID
	}
	t.emitter.dispatch(IntelligencePath, payload)
}

// Wait blocks until in-flight tracking requests finish.
func (t *Tracker) Wait() {
	t.emitter.Wait()
}
