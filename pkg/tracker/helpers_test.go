package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingTransport struct {
	mu           sync.Mutex
	failTracking bool
	leadResponse *Response
	behaviors    []BehaviorPayload
	intelligence []IntelligencePayload
	leadForms    []LeadForm
	endpoints    []string
}

func (r *recordingTransport) Send(_ context.Context, endpoint string, payload any) (*Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoints = append(r.endpoints, endpoint)

	switch p := payload.(type) {
	case LeadForm:
		r.leadForms = append(r.leadForms, p)
		if r.leadResponse == nil {
			return nil, errors.New("no lead response configured")
		}
		return r.leadResponse, nil
	case BehaviorPayload:
		if r.failTracking {
			return nil, errors.New("dial tcp: connection refused")
		}
		r.behaviors = append(r.behaviors, p)
	case IntelligencePayload:
		if r.failTracking {
			return nil, errors.New("dial tcp: connection refused")
		}
		r.intelligence = append(r.intelligence, p)
	}
	return &Response{OK: true, Status: 200}, nil
}

func (r *recordingTransport) Behaviors() []BehaviorPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]BehaviorPayload, len(r.behaviors))
	copy(out, r.behaviors)
	return out
}

func (r *recordingTransport) Actions() []string {
	var actions []string
	for _, b := range r.Behaviors() {
		actions = append(actions, b.Action)
	}
	return actions
}

func (r *recordingTransport) Find(action string) []BehaviorPayload {
	var found []BehaviorPayload
	for _, b := range r.Behaviors() {
		if b.Action == action {
			found = append(found, b)
		}
	}
	return found
}

type failingStorage struct{}

func (failingStorage) Get(string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (failingStorage) Set(string, string) error {
	return errors.New("storage disabled")
}

func newTestTracker(transport Transport, clock Clock) *Tracker {
	t, err := New(Config{
		BaseURL:   "http://api.test",
		SiteURL:   "https://aqar.test",
		UserAgent: "tracker-test/1.0",
		Transport: transport,
		Clock:     clock,
	})
	if err != nil {
		panic(err)
	}
	return t
}

func decodeMetadata(p BehaviorPayload) map[string]any {
	if p.Metadata == nil {
		return nil
	}
	var m map[string]any
	if err := json.NewDecoder(strings.NewReader(*p.Metadata)).Decode(&m); err != nil {
		return nil
	}
	return m
}
