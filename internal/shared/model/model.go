// Package model holds column sets and helpers shared by the gorm entities.
package model

import (
	"context"
	"time"

	"speed-hrm/internal/shared/apperror"
	"speed-hrm/internal/shared/contextutil"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Audit is embedded by every mutable entity.
type Audit struct {
	CreatedByID *uuid.UUID `gorm:"type:uuid"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StampCreate sets both actor columns from the caller in ctx.
func (a *Audit) StampCreate(ctx context.Context) {
	id := ActorID(ctx)
	a.CreatedByID = id
	a.UpdatedByID = id
}

func (a *Audit) StampUpdate(ctx context.Context) {
	a.UpdatedByID = ActorID(ctx)
}

// ActorID returns the caller's user id, or nil for anonymous or system work.
func ActorID(ctx context.Context) *uuid.UUID {
	return UUIDPtr(contextutil.GetUserID(ctx))
}

func StatusOrDefault(status string) string {
	if status == "" {
		return StatusActive
	}
	return status
}

func UUIDPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func UUIDString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func StringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// StringPtr returns nil for the empty string.
func StringPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// ParseID validates a path id.
func ParseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperror.ErrInvalidID
	}
	return parsed, nil
}

// ParseIDs validates every id and drops repeats, keeping order.
func ParseIDs(ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		parsed, err := ParseID(id)
		if err != nil {
			return nil, err
		}
		key := parsed.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	if len(out) == 0 {
		return nil, apperror.ErrEmptyBulk
	}
	return out, nil
}

// FormatTime renders t as RFC3339 UTC, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
