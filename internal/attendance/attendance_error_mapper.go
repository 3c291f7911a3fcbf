package attendance

import (
	attendanceerrors "speed-hrm/internal/attendance/errors"
	"speed-hrm/internal/shared/dberr"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case dberr.IsNotFound(err):
		return attendanceerrors.ErrAttendanceNotFound
	case dberr.IsUniqueViolation(err, "uq_attendance_employee_date"):
		return attendanceerrors.ErrAlreadyClockedIn
	case dberr.IsForeignKeyViolation(err):
		return attendanceerrors.ErrUnknownEmployee
	}

	return err
}
