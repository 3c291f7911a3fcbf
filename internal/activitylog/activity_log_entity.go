package activitylog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLog is append-only. Nothing in the application updates or deletes rows.
type ActivityLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID       *uuid.UUID     `gorm:"type:uuid;index"`
	Action       string         `gorm:"type:varchar(30);not null;index"`
	Module       string         `gorm:"type:varchar(60);not null;index:idx_activity_module_entity"`
	Entity       string         `gorm:"type:varchar(60);not null;index:idx_activity_module_entity"`
	EntityID     *string        `gorm:"type:varchar(64)"`
	Description  string         `gorm:"type:text;not null"`
	OldValues    datatypes.JSON `gorm:"type:jsonb"`
	NewValues    datatypes.JSON `gorm:"type:jsonb"`
	ErrorMessage *string        `gorm:"type:text"`
	IPAddress    *string        `gorm:"type:varchar(64)"`
	UserAgent    *string        `gorm:"type:text"`
	RequestID    *string        `gorm:"type:varchar(64)"`
	Status       string         `gorm:"type:varchar(10);not null;index"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
