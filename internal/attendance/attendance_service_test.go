package attendance

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"speed-hrm/internal/activitylog"
	attendanceerrors "speed-hrm/internal/attendance/errors"
	"speed-hrm/internal/shared/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn                func(ctx context.Context, a *Attendance) error
	findByIDFn              func(ctx context.Context, id string) (*Attendance, error)
	findByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	findAllFn               func(ctx context.Context, filter ListFilter, from, to *time.Time) ([]Attendance, int64, error)
	updateFn                func(ctx context.Context, a *Attendance) error
	deleteFn                func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository                   { return f }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Attendance, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	return f.findByEmployeeAndDateFn(ctx, employeeID, date)
}
func (f *fakeRepo) FindAll(ctx context.Context, filter ListFilter, from, to *time.Time) ([]Attendance, int64, error) {
	return f.findAllFn(ctx, filter, from, to)
}
func (f *fakeRepo) Update(ctx context.Context, a *Attendance) error { return f.updateFn(ctx, a) }
func (f *fakeRepo) Delete(ctx context.Context, id string) error     { return f.deleteFn(ctx, id) }

func newTestService(t *testing.T, repo Repository, clock time.Time) (*service, *testutil.RecorderSpy, func(commit bool)) {
	db, _, mock := testutil.NewGormMock(t)
	recorder := &testutil.RecorderSpy{}
	svc := NewService(db, repo, recorder, Options{Location: time.UTC}).(*service)
	svc.now = func() time.Time { return clock }
	return svc, recorder, func(commit bool) { testutil.ExpectTx(mock, commit) }
}

func TestService_ClockInAndClockOut(t *testing.T) {
	employeeID := uuid.New().String()
	ctx := context.Background()

	var saved Attendance
	repo := &fakeRepo{}
	repo.createFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.updateFn = func(ctx context.Context, a *Attendance) error { saved = *a; return nil }
	repo.findByEmployeeAndDateFn = func(ctx context.Context, id string, date time.Time) (*Attendance, error) {
		if saved.ID == uuid.Nil {
			return nil, gorm.ErrRecordNotFound
		}
		row := saved
		return &row, nil
	}

	svc, recorder, expectTx := newTestService(t, repo, time.Date(2025, 3, 10, 8, 55, 0, 0, time.UTC))

	expectTx(true)
	inResp, err := svc.ClockIn(ctx, ClockInRequest{EmployeeID: employeeID})
	assert.NoError(t, err)
	assert.Equal(t, StatusPresent, inResp.Status)
	assert.Equal(t, SourceManual, inResp.Source)
	assert.Equal(t, "2025-03-10", inResp.AttendanceDate)

	svc.now = func() time.Time { return time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC) }
	expectTx(true)
	outResp, err := svc.ClockOut(ctx, ClockOutRequest{EmployeeID: employeeID})
	assert.NoError(t, err)
	assert.NotNil(t, outResp.ClockOut)
	assert.Equal(t, inResp.ID, outResp.ID)

	entry := recorder.Last()
	assert.Equal(t, activitylog.ActionUpdate, entry.Action)
	assert.Nil(t, entry.OldValues.(AttendanceResponse).ClockOut)
}

func TestService_ClockIn_Late(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error { return nil },
		findByEmployeeAndDateFn: func(ctx context.Context, id string, date time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _, expectTx := newTestService(t, repo, time.Date(2025, 3, 10, 9, 16, 0, 0, time.UTC))

	expectTx(true)
	resp, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: uuid.NewString()})

	assert.NoError(t, err)
	assert.Equal(t, StatusLate, resp.Status)
}

func TestService_ClockIn_LatenessOnDSTDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	tests := []struct {
		name  string
		clock time.Time
		want  string
	}{
		{"spring forward, after cutoff", time.Date(2024, 3, 10, 9, 20, 0, 0, loc), StatusLate},
		{"spring forward, before cutoff", time.Date(2024, 3, 10, 9, 10, 0, 0, loc), StatusPresent},
		{"fall back, before cutoff", time.Date(2024, 11, 3, 9, 10, 0, 0, loc), StatusPresent},
		{"fall back, after cutoff", time.Date(2024, 11, 3, 9, 16, 0, 0, loc), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{
				createFn: func(ctx context.Context, a *Attendance) error { return nil },
				findByEmployeeAndDateFn: func(ctx context.Context, id string, date time.Time) (*Attendance, error) {
					return nil, gorm.ErrRecordNotFound
				},
			}
			svc, _, expectTx := newTestService(t, repo, tt.clock.UTC())
			svc.opts.Location = loc

			expectTx(true)
			resp, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: uuid.NewString()})

			assert.NoError(t, err)
			assert.Equal(t, tt.want, resp.Status)
		})
	}
}

func TestService_ClockIn_Duplicate(t *testing.T) {
	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, id string, date time.Time) (*Attendance, error) {
			return &Attendance{ID: uuid.New()}, nil
		},
	}
	svc, recorder, expectTx := newTestService(t, repo, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	expectTx(false)
	_, err := svc.ClockIn(context.Background(), ClockInRequest{EmployeeID: uuid.NewString()})

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
	assert.Equal(t, activitylog.StatusFailure, recorder.Last().Status)
}

func TestService_ClockOut_Twice(t *testing.T) {
	out := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, id string, date time.Time) (*Attendance, error) {
			return &Attendance{ID: uuid.New(), ClockOut: &out}, nil
		},
	}
	svc, _, expectTx := newTestService(t, repo, out.Add(time.Hour))

	expectTx(false)
	_, err := svc.ClockOut(context.Background(), ClockOutRequest{EmployeeID: uuid.NewString()})

	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedOut)
}

func TestService_ClockOut_WithoutClockIn(t *testing.T) {
	repo := &fakeRepo{
		findByEmployeeAndDateFn: func(ctx context.Context, id string, date time.Time) (*Attendance, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _, expectTx := newTestService(t, repo, time.Now())

	expectTx(false)
	_, err := svc.ClockOut(context.Background(), ClockOutRequest{EmployeeID: uuid.NewString()})

	assert.ErrorIs(t, err, attendanceerrors.ErrNotClockedIn)
}

func TestService_GetAll_DateRange(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(ctx context.Context, filter ListFilter, from, to *time.Time) ([]Attendance, int64, error) {
			assert.Equal(t, "2025-03-01", from.Format(dateLayout))
			assert.Equal(t, "2025-03-31", to.Format(dateLayout))
			return []Attendance{{ID: uuid.New(), Employee: &EmployeeRef{FullName: "Ayesha"}}}, 1, nil
		},
	}
	svc, _, _ := newTestService(t, repo, time.Now())

	res, total, err := svc.GetAll(context.Background(), ListFilter{ListQuery: ListQuery{From: "2025-03-01", To: "2025-03-31"}})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Ayesha", res[0].EmployeeName)

	_, _, err = svc.GetAll(context.Background(), ListFilter{ListQuery: ListQuery{From: "2025-03-31", To: "2025-03-01"}})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)

	_, _, err = svc.GetAll(context.Background(), ListFilter{ListQuery: ListQuery{From: "March"}})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateRange)
}

func TestParseClock(t *testing.T) {
	d, err := ParseClock("09:15")
	assert.NoError(t, err)
	assert.Equal(t, DefaultLateAfter, d)

	_, err = ParseClock("9am")
	assert.Error(t, err)
}
