package attendance

import (
	"time"

	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"

	SourceManual = "MANUAL"
)

type Attendance struct {
	ID             uuid.UUID    `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2;index"`
	ClockIn        time.Time    `gorm:"column:clock_in;type:timestamptz;not null"`
	ClockOut       *time.Time   `gorm:"column:clock_out;type:timestamptz"`
	Latitude       *float64     `gorm:"column:latitude"`
	Longitude      *float64     `gorm:"column:longitude"`
	Status         string       `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	Source         string       `gorm:"column:source;type:varchar(30);not null;default:MANUAL"`
	Notes          *string      `gorm:"column:notes;type:text"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE"`
	model.Audit
}

func (Attendance) TableName() string {
	return "attendances"
}

// EmployeeRef is the read-only slice of employees needed for listing.
type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
