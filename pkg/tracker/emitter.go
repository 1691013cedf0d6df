package tracker

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Emitter turns behavior inputs into payloads and ships each one on a
// detached goroutine. Delivery failures are logged and dropped.
type Emitter struct {
	baseURL   string
	transport Transport
	identity  *IdentityStore
	pageURL   func() string
	userAgent string
	timeout   time.Duration
	logger    Logger

	wg sync.WaitGroup
}

func newEmitter(baseURL string, transport Transport, identity *IdentityStore, pageURL func() string, userAgent string, timeout time.Duration, logger Logger) *Emitter {
	return &Emitter{
		baseURL:   baseURL,
		transport: transport,
		identity:  identity,
		pageURL:   pageURL,
		userAgent: userAgent,
		timeout:   timeout,
		logger:    logger,
	}
}

// Track enriches in with the current identity and sends it. It never blocks on
// the network and never reports failure to the caller.
func (e *Emitter) Track(in BehaviorInput) {
	e.trackOn(in, e.pageURL())
}

// trackOn is Track for an event that belongs to a page other than the
// current one.
func (e *Emitter) trackOn(in BehaviorInput, pageURL string) {
	if in.BehaviorType == "" || in.Action == "" {
		e.logger.Warn("dropping behavior without type or action: %q/%q", in.BehaviorType, in.Action)
		return
	}
	e.dispatch(BehaviorPath, e.build(in, pageURL))
}

// build snapshots identity at call time so later lead binds never leak into
// earlier events.
func (e *Emitter) build(in BehaviorInput, pageURL string) BehaviorPayload {
	payload := BehaviorPayload{
		SessionID:    e.identity.SessionID(),
		BehaviorType: in.BehaviorType,
		Action:       in.Action,
		Target:       optional(in.Target),
		TargetID:     optional(in.TargetID),
		TimeSpent:    in.TimeSpent,
		ScrollDepth:  in.ScrollDepth,
		PageURL:      pageURL,
		UserAgent:    e.userAgent,
	}
	if leadID, ok := e.identity.LeadID(); ok {
		payload.LeadID = &leadID
	}
	if len(in.Metadata) > 0 {
		raw, err := json.Marshal(in.Metadata)
		if err != nil {
			e.logger.Warn("dropping unserializable metadata for %s/%s: %v", in.BehaviorType, in.Action, err)
		} else {
			s := string(raw)
			payload.Metadata = &s
		}
	}
	return payload
}

// dispatch runs the send as a detached task. Panics and errors stop at the
// task boundary.
func (e *Emitter) dispatch(path string, payload any) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("tracking task panicked: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()

		resp, err := e.transport.Send(ctx, e.baseURL+path, payload)
		if err != nil {
			e.logger.Warn("tracking request failed: %v", err)
			return
		}
		if !resp.OK {
			e.logger.Warn("tracking request rejected with status %d", resp.Status)
			return
		}
		e.logger.Debug("tracking request delivered to %s", path)
	}()
}

// Wait blocks until every in-flight send has finished.
func (e *Emitter) Wait() {
	e.wg.Wait()
}
