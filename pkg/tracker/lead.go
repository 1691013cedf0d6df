package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// LeadForm is the contact form a visitor submits.
type LeadForm struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Message           string `json:"message,omitempty"`
	InterestType      string `json:"interestType,omitempty"`
	PropertyID        string `json:"propertyId,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
	Source            string `json:"source,omitempty"`
	SessionID         string `json:"sessionId,omitempty"`
}

// LeadResult is the lead the backend created for a submission.
type LeadResult struct {
	ID          string `json:"id"`
	FunnelStage string `json:"funnelStage"`
}

// LeadError is returned when the backend refuses a submission.
type LeadError struct {
	Status  int
	Message string
}

func (e *LeadError) Error() string {
	return fmt.Sprintf("lead submission failed with status %d: %s", e.Status, e.Message)
}

type leadEnvelope struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    LeadResult `json:"data"`
}

// SubmitLead posts form to the lead endpoint and, on success, binds the new
// lead to this visitor. Tracking failures never affect the returned result.
func (t *Tracker) SubmitLead(ctx context.Context, form LeadForm) (*LeadResult, error) {
	form.SessionID = t.identity.SessionID()

	resp, err := t.client.Send(ctx, t.baseURL+LeadsPath, form)
	if err != nil {
		return nil, fmt.Errorf("submit lead: %w", err)
	}

	var envelope leadEnvelope
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &envelope); err != nil && resp.OK {
			return nil, fmt.Errorf("decode lead response: %w", err)
		}
	}
	if !resp.OK {
		return nil, &LeadError{Status: resp.Status, Message: envelope.Message}
	}
	if envelope.Data.ID == "" {
		return nil, errors.New("lead response carried no id")
	}

	t.BindLead(envelope.Data.ID)
	return &envelope.Data, nil
}
