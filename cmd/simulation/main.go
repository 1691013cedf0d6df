package main

import (
	"context"
	"flag"
	"log"
	"sync"
	"time"

	"realestate-funnel-be/pkg/tracker"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// simClock only moves when Advance is called.
type simClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *simClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *simClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func main() {
	apiURL := flag.String("api", "http://localhost:3000", "backend origin")
	siteURL := flag.String("site", "https://aqar.example", "public site origin used in page URLs")
	statePath := flag.String("state", ".funnel-simulation.json", "file that keeps the visitor identity between runs")
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	clock := &simClock{now: time.Now()}
	t, err := tracker.New(tracker.Config{
		BaseURL:      *apiURL,
		SiteURL:      *siteURL,
		UserAgent:    "funnel-simulation/1.0",
		LocalStorage: tracker.NewFileStorage(*statePath),
		Logger:       tracker.NewZapLogger(zl),
		Clock:        clock,
	})
	if err != nil {
		log.Fatalf("Failed to create tracker: %v", err)
	}

	color.Cyan("Starting funnel simulation against %s\n", *apiURL)
	color.White("Session: %s", t.SessionID())
	if lead, ok := t.LeadID(); ok {
		color.White("Returning visitor bound to lead %s", lead)
	}

	color.Yellow("\n1. Home page, reads most of it")
	home := t.EnterPage("/ar")
	for _, top := range []float64{400, 1200, 2600} {
		home.Scroll(top, 4000, 900)
	}
	clock.Advance(12 * time.Second)
	home.Exit()
	color.Green("Left %s after 12s at %.0f%% scroll", home.Route(), home.MaxScrollDepth())

	color.Yellow("\n2. Search page, filters then bounces")
	search := t.EnterPage("/ar/properties")
	t.TrackToolUsage("search_filters", "use_filter", map[string]any{"bedrooms": 2, "city": "دبي"})
	t.TrackContentInteraction("property", "prop-101", "open_listing")
	t.TrackNavigation("/ar/properties", "/ar/properties/prop-101")
	clock.Advance(3 * time.Second)
	search.Exit()
	color.Green("Bounce on %s after 3s: no leave_page sent", search.Route())

	color.Yellow("\n3. Listing page, contacts the agent")
	listing := t.EnterPage("/ar/properties/prop-101")
	listing.Scroll(900, 3000, 900)
	t.TrackTrustSignal("agent_license", "view")
	t.TrackCTAClick("whatsapp", "prop-101", map[string]any{"placement": "sticky_footer"})
	t.TrackFormInteraction("contact", tracker.ActionFieldFocus, "phone")
	t.TrackIntelligence(tracker.IntelligenceEvent{
		EventType:  "gallery_swipe",
		PropertyID: "prop-101",
		Metadata:   map[string]any{"photo": 4},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	lead, err := t.SubmitLead(ctx, tracker.LeadForm{
		FullName:          "Simulated Visitor",
		Phone:             "+971500000000",
		InterestType:      "buy",
		PropertyID:        "prop-101",
		PreferredLanguage: "ar",
		Source:            "simulation",
		Message:           "أرغب في معاينة العقار",
	})
	cancel()
	if err != nil {
		color.Red("Lead submission failed: %v", err)
	} else {
		color.Green("Lead %s created, stage %s", lead.ID, lead.FunnelStage)
	}
	clock.Advance(40 * time.Second)
	listing.Exit()

	color.Yellow("\n4. Comes back 31 minutes later")
	clock.Advance(31 * time.Minute)
	back := t.EnterPage("/ar")
	clock.Advance(8 * time.Second)
	back.Exit()
	color.Green("Return visit to %s reported", back.Route())

	t.Wait()
	color.Cyan("\nSimulation complete. Identity kept in %s", *statePath)
}
