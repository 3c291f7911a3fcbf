package events

import (
	"encoding/json"
	"time"
)

const ActivityLoggedTopic = "hr.activity.log.v1"

const ActivityLoggedEventType = "activity_logged"

type ActivityLoggedEvent struct {
	EventType    string          `json:"event_type"`
	RequestID    string          `json:"request_id,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	Action       string          `json:"action"`
	Module       string          `json:"module"`
	Entity       string          `json:"entity"`
	EntityID     string          `json:"entity_id,omitempty"`
	Description  string          `json:"description"`
	OldValues    json.RawMessage `json:"old_values,omitempty"`
	NewValues    json.RawMessage `json:"new_values,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	IPAddress    string          `json:"ip_address,omitempty"`
	UserAgent    string          `json:"user_agent,omitempty"`
	Status       string          `json:"status"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
