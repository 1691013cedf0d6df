package tracker

import (
	"math"
	"sync"
	"time"
)

const (
	// A page view shorter than this is treated as a bounce and not reported on exit.
	minDwellSeconds = 5
	// A view of the same route after this gap counts as a return visit.
	returnVisitGap = 30 * time.Minute
)

// PageView is the lifecycle handle of one visit to a route. It is created by
// Tracker.EnterPage and flushed by Exit.
type PageView struct {
	tracker *Tracker
	route   string
	start   time.Time

	mu        sync.Mutex
	maxScroll float64
	exited    bool
}

// Route returns the path this view was opened for.
func (p *PageView) Route() string {
	return p.route
}

// Scroll records a scroll position and returns the percentage it represents.
// The running maximum only grows.
func (p *PageView) Scroll(scrollTop, scrollHeight, viewportHeight float64) float64 {
	percent := ScrollPercent(scrollTop, scrollHeight, viewportHeight)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.exited && percent > p.maxScroll {
		p.maxScroll = percent
	}
	return percent
}

// MaxScrollDepth returns the deepest scroll percentage seen so far.
func (p *PageView) MaxScrollDepth() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxScroll
}

// Exit closes the view. Views that lasted more than five whole seconds emit a
// leave_page event with the dwell time and deepest scroll, reported against
// this view's route even if another page was entered since. Calling Exit
// again does nothing.
func (p *PageView) Exit() {
	p.mu.Lock()
	if p.exited {
		p.mu.Unlock()
		return
	}
	p.exited = true
	depth := p.maxScroll
	p.mu.Unlock()

	elapsed := int(p.tracker.clock.Now().Sub(p.start) / time.Second)
	if elapsed <= minDwellSeconds {
		return
	}

	p.tracker.emitter.trackOn(BehaviorInput{
		BehaviorType: BehaviorPageView,
		Action:       ActionLeavePage,
		TimeSpent:    &elapsed,
		ScrollDepth:  &depth,
	}, p.tracker.urlFor(p.route))
}

// ScrollPercent converts a scroll position into a 0-100 percentage. Content
// that fits the viewport yields 0.
func ScrollPercent(scrollTop, scrollHeight, viewportHeight float64) float64 {
	scrollable := scrollHeight - viewportHeight
	if scrollable <= 0 || math.IsNaN(scrollable) || math.IsNaN(scrollTop) {
		return 0
	}
	percent := scrollTop / scrollable * 100
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	}
	return percent
}
