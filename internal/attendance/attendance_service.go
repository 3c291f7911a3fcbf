package attendance

import (
	"context"
	"fmt"
	"time"

	"speed-hrm/internal/activitylog"
	attendanceerrors "speed-hrm/internal/attendance/errors"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/dberr"
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	auditModule = "attendance"
	auditEntity = "attendance"

	dateLayout = "2006-01-02"

	// DefaultLateAfter is the clock-in cutoff used when none is configured.
	DefaultLateAfter = 9*time.Hour + 15*time.Minute
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, int64, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type Options struct {
	// LateAfter is the local wall-clock time, as an offset from 00:00,
	// after which a clock-in is LATE.
	LateAfter time.Duration
	Location  *time.Location
}

type service struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	opts     Options
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	recorder activitylog.Recorder,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	if opts.LateAfter <= 0 {
		opts.LateAfter = DefaultLateAfter
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &service{
		db:       db,
		repo:     repo,
		recorder: recorder,
		opts:     opts,
		now:      time.Now,
		logger:   l,
	}
}

// ParseClock converts an "HH:MM" string into an offset from midnight.
func ParseClock(v string) (time.Duration, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", v, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// wallClock reads the time of day off t, so DST transitions on that date do
// not shift it.
func wallClock(t time.Time) time.Duration {
	h, m, sec := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) today() (time.Time, time.Time) {
	now := s.now().In(s.opts.Location)
	y, m, d := now.Date()
	return now, time.Date(y, m, d, 0, 0, 0, 0, s.opts.Location)
}

func (s *service) ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error) {
	now, today := s.today()

	status := StatusPresent
	if wallClock(now) > s.opts.LateAfter {
		status = StatusLate
	}
	source := req.Source
	if source == "" {
		source = SourceManual
	}

	row := Attendance{
		ID:             uuid.New(),
		EmployeeID:     uuid.MustParse(req.EmployeeID),
		AttendanceDate: today,
		ClockIn:        now,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Status:         status,
		Source:         source,
		Notes:          req.Notes,
	}
	row.StampCreate(ctx)

	entry := activitylog.Entry{
		Action:    activitylog.ActionCreate,
		Module:    auditModule,
		Entity:    auditEntity,
		EntityID:  row.ID.String(),
		NewValues: req,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		existing, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
		if err != nil && !dberr.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return attendanceerrors.ErrAlreadyClockedIn
		}

		return qtx.Create(ctx, &row)
	})
	if err != nil {
		s.log(ctx).Warn("clock in failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		entry.Description = "Failed to clock in"
		s.recorder.Record(ctx, entry.Failed(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Clocked in %s (%s)", today.Format(dateLayout), status)
	s.recorder.Record(ctx, entry)

	return mapToResponse(row), nil
}

func (s *service) ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error) {
	now, today := s.today()

	entry := activitylog.Entry{
		Action: activitylog.ActionUpdate,
		Module: auditModule,
		Entity: auditEntity,
	}

	var before, after Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		row, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, today)
		if err != nil {
			if dberr.IsNotFound(err) {
				return attendanceerrors.ErrNotClockedIn
			}
			return err
		}
		if row.ClockOut != nil {
			return attendanceerrors.ErrAlreadyClockedOut
		}
		before = *row

		row.ClockOut = &now
		if req.Latitude != nil {
			row.Latitude = req.Latitude
		}
		if req.Longitude != nil {
			row.Longitude = req.Longitude
		}
		if req.Notes != nil {
			row.Notes = req.Notes
		}
		row.StampUpdate(ctx)

		if err := qtx.Update(ctx, row); err != nil {
			return err
		}
		after = *row
		return nil
	})
	if err != nil {
		s.log(ctx).Warn("clock out failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		entry.Description = "Failed to clock out"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	entry.EntityID = after.ID.String()
	entry.Description = fmt.Sprintf("Clocked out %s", today.Format(dateLayout))
	entry.OldValues = mapToResponse(before)
	entry.NewValues = mapToResponse(after)
	s.recorder.Record(ctx, entry)

	return mapToResponse(after), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, int64, error) {
	from, err := parseOptionalDate(filter.From, s.opts.Location)
	if err != nil {
		return nil, 0, err
	}
	to, err := parseOptionalDate(filter.To, s.opts.Location)
	if err != nil {
		return nil, 0, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, 0, attendanceerrors.ErrInvalidDateRange
	}

	rows, total, err := s.repo.FindAll(ctx, filter, from, to)
	if err != nil {
		s.log(ctx).Error("list attendances failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return AttendanceResponse{}, err
	}

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   auditEntity,
		EntityID: id,
	}

	var removed Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		row, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *row

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete attendance failed", zap.String("attendance_id", id), zap.Error(err))
		entry.Description = "Failed to delete attendance"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapRepositoryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted attendance of %s", removed.AttendanceDate.Format(dateLayout))
	entry.OldValues = mapToResponse(removed)
	s.recorder.Record(ctx, entry)
	return nil
}

func parseOptionalDate(v string, loc *time.Location) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, v, loc)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateRange
	}
	return &t, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format(dateLayout),
		ClockIn:        a.ClockIn.Format(time.RFC3339),
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Status:         a.Status,
		Source:         a.Source,
		Notes:          a.Notes,
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if a.Employee != nil {
		resp.EmployeeCode = a.Employee.EmployeeCode
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}
