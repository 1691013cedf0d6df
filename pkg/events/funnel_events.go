package events

import "time"

func NewBehaviorTracked(id, sessionID string, leadID *string, behaviorType, action, pageURL string, createdAt time.Time) BaseEvent {
	data := map[string]interface{}{
		"id":           id,
		"sessionId":    sessionID,
		"behaviorType": behaviorType,
		"action":       action,
		"pageUrl":      pageURL,
		"createdAt":    createdAt.UTC().Format(time.RFC3339Nano),
	}
	if leadID != nil {
		data["leadId"] = *leadID
	}
	return BaseEvent{Key: id, Type: TypeBehaviorTracked, Data: data, OccurredAt: createdAt}
}

func NewLeadCreated(leadID, sessionID, interestType, propertyID, source string, createdAt time.Time) BaseEvent {
	data := map[string]interface{}{
		"leadId":    leadID,
		"createdAt": createdAt.UTC().Format(time.RFC3339Nano),
	}
	if sessionID != "" {
		data["sessionId"] = sessionID
	}
	if interestType != "" {
		data["interestType"] = interestType
	}
	if propertyID != "" {
		data["propertyId"] = propertyID
	}
	if source != "" {
		data["source"] = source
	}
	return BaseEvent{Key: leadID, Type: TypeLeadCreated, Data: data, OccurredAt: createdAt}
}
