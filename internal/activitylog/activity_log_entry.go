package activitylog

import (
	"context"
	"encoding/json"
	"time"

	"speed-hrm/internal/events"
	"speed-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

type Action string

const (
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionBulkCreate Action = "bulk_create"
	ActionBulkDelete Action = "bulk_delete"
	ActionTransfer   Action = "transfer"
	ActionSeed       Action = "seed"
)

// Entry describes one attempted mutation. Actor and request fields are
// filled from the context when left empty.
type Entry struct {
	UserID       string
	Action       Action
	Module       string
	Entity       string
	EntityID     string
	Description  string
	OldValues    any
	NewValues    any
	ErrorMessage string
	IPAddress    string
	UserAgent    string
	RequestID    string
	Status       Status
	OccurredAt   time.Time
}

// Failed marks the entry as a failure carrying the raw error message.
func (e Entry) Failed(err error) Entry {
	e.Status = StatusFailure
	if err != nil {
		e.ErrorMessage = err.Error()
	}
	return e
}

func (e Entry) enrich(ctx context.Context) Entry {
	actor := contextutil.GetActor(ctx)
	if e.UserID == "" {
		e.UserID = actor.UserID
	}
	if e.IPAddress == "" {
		e.IPAddress = actor.IPAddress
	}
	if e.UserAgent == "" {
		e.UserAgent = actor.UserAgent
	}
	if e.RequestID == "" {
		e.RequestID = contextutil.GetRequestID(ctx)
	}
	if e.Status == "" {
		e.Status = StatusSuccess
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	return e
}

// Event converts the entry into its wire form.
func (e Entry) Event(ctx context.Context) events.ActivityLoggedEvent {
	e = e.enrich(ctx)
	return events.ActivityLoggedEvent{
		EventType:    events.ActivityLoggedEventType,
		RequestID:    e.RequestID,
		UserID:       e.UserID,
		Action:       string(e.Action),
		Module:       e.Module,
		Entity:       e.Entity,
		EntityID:     e.EntityID,
		Description:  e.Description,
		OldValues:    marshalValues(e.OldValues),
		NewValues:    marshalValues(e.NewValues),
		ErrorMessage: e.ErrorMessage,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		Status:       string(e.Status),
		OccurredAt:   e.OccurredAt,
	}
}

// ModelFromEvent builds the row persisted for an event.
func ModelFromEvent(ev events.ActivityLoggedEvent) *ActivityLog {
	row := &ActivityLog{
		ID:           uuid.New(),
		UserID:       parseUUIDPtr(ev.UserID),
		Action:       ev.Action,
		Module:       ev.Module,
		Entity:       ev.Entity,
		EntityID:     strPtr(ev.EntityID),
		Description:  ev.Description,
		ErrorMessage: strPtr(ev.ErrorMessage),
		IPAddress:    strPtr(ev.IPAddress),
		UserAgent:    strPtr(ev.UserAgent),
		RequestID:    strPtr(ev.RequestID),
		Status:       ev.Status,
		CreatedAt:    ev.OccurredAt,
	}
	if len(ev.OldValues) > 0 {
		row.OldValues = datatypes.JSON(ev.OldValues)
	}
	if len(ev.NewValues) > 0 {
		row.NewValues = datatypes.JSON(ev.NewValues)
	}
	return row
}

func marshalValues(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	return b
}

func parseUUIDPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
