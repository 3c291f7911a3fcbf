package activitylog

import "encoding/json"

type ListActivityLogsQuery struct {
	Module string `form:"module"`
	Entity string `form:"entity"`
	Action string `form:"action"`
	Status string `form:"status" binding:"omitempty,oneof=success failure"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type ActivityLogResponse struct {
	ID           string          `json:"id"`
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
	RequestID    string          `json:"request_id,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"created_at"`
}
