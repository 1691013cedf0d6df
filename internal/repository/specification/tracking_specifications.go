package specification

import (
	"time"

	"gorm.io/gorm"
)

type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

type ByLeadID struct {
	LeadID string
}

func (s ByLeadID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("lead_id = ?", s.LeadID)
}

// LeadTimeline matches events that carry the lead id plus the anonymous
// events of every session linked to the lead, whether sent before or after
// the binding. Events tagged with another lead belong to that lead.
type LeadTimeline struct {
	LeadID string
}

func (s LeadTimeline) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"lead_id = ? OR (lead_id IS NULL AND session_id IN (SELECT session_id FROM session_leads WHERE lead_id = ?))",
		s.LeadID, s.LeadID,
	)
}

// CreatedBetween is the half-open range [From, To). A zero bound is left open.
type CreatedBetween struct {
	From time.Time
	To   time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	if !s.From.IsZero() {
		db = db.Where("created_at >= ?", s.From)
	}
	if !s.To.IsZero() {
		db = db.Where("created_at < ?", s.To)
	}
	return db
}
