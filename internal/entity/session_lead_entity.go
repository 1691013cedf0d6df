package entity

import "time"

const (
	SessionLinkSourceForm  = "form"
	SessionLinkSourceEvent = "event"
)

type SessionLead struct {
	SessionId string
	LeadId    string
	Source    string
	BoundAt   time.Time
}
