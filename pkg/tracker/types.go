package tracker

// Behavior categories understood by the backend. The vocabulary is open:
// any lower_snake_case type is accepted.
const (
	BehaviorPageView           = "page_view"
	BehaviorFormInteraction    = "form_interaction"
	BehaviorCTAInteraction     = "cta_interaction"
	BehaviorToolUsage          = "tool_usage"
	BehaviorContentInteraction = "content_interaction"
	BehaviorTrustSignal        = "trust_signal"
	BehaviorNavigation         = "navigation"
	BehaviorEngagement         = "engagement"
)

const (
	ActionViewPage    = "view_page"
	ActionLeavePage   = "leave_page"
	ActionFieldFocus  = "field_focus"
	ActionSubmitForm  = "submit_form"
	ActionUseFilter   = "use_filter"
	ActionReturnVisit = "return_visit"
	ActionNavigate    = "navigate"
)

// Backend routes, relative to Config.BaseURL.
const (
	BehaviorPath     = "/api/tracking/behavior"
	IntelligencePath = "/api/intelligence/behavior/track"
	LeadsPath        = "/api/leads"
)

// BehaviorInput is what callers describe about an observed action.
// Everything except BehaviorType and Action is optional.
type BehaviorInput struct {
	BehaviorType string
	Action       string
	Target       string
	TargetID     string
	Metadata     map[string]any
	TimeSpent    *int
	ScrollDepth  *float64
}

// BehaviorPayload is the JSON body of POST /api/tracking/behavior.
type BehaviorPayload struct {
	SessionID    string   `json:"sessionId"`
	LeadID       *string  `json:"leadId"`
	BehaviorType string   `json:"behaviorType"`
	Action       string   `json:"action"`
	Target       *string  `json:"target"`
	TargetID     *string  `json:"targetId"`
	Metadata     *string  `json:"metadata"`
	TimeSpent    *int     `json:"timeSpent"`
	ScrollDepth  *float64 `json:"scrollDepth"`
	PageURL      string   `json:"pageUrl"`
	UserAgent    string   `json:"userAgent"`
}

// IntelligenceEvent is an interaction reported to the intelligence stream,
// which is stored apart from behavior events.
type IntelligenceEvent struct {
	EventType  string
	ElementID  string
	PropertyID string
	Metadata   map[string]any
}

// IntelligencePayload is the JSON body of POST /api/intelligence/behavior/track.
type IntelligencePayload struct {
	SessionID  string         `json:"sessionId"`
	LeadID     *string        `json:"leadId"`
	EventType  string         `json:"eventType"`
	ElementID  *string        `json:"elementId"`
	PropertyID *string        `json:"propertyId"`
	PageURL    string         `json:"pageUrl"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
