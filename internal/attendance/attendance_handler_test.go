package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	attendanceerrors "speed-hrm/internal/attendance/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	clockInFn  func(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)
	clockOutFn func(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)
	getAllFn   func(ctx context.Context, filter ListFilter) ([]AttendanceResponse, int64, error)
}

func (f *fakeService) ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error) {
	return f.clockInFn(ctx, req)
}
func (f *fakeService) ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error) {
	return f.clockOutFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context, filter ListFilter) ([]AttendanceResponse, int64, error) {
	return f.getAllFn(ctx, filter)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	return AttendanceResponse{ID: id}, nil
}
func (f *fakeService) Delete(ctx context.Context, id string) error { return nil }

func TestHandler_ClockIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict on second clock in", func(t *testing.T) {
		h := NewHandler(&fakeService{
			clockInFn: func(ctx context.Context, req ClockInRequest) (AttendanceResponse, error) {
				return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in",
			strings.NewReader(`{"employee_id":"0b8f6c1e-2f0c-4c3c-9f7a-3c9f1d2e4b5a"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ClockIn(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		h := NewHandler(&fakeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/attendances/clock-in",
			strings.NewReader(`{"employee_id":"0b8f6c1e-2f0c-4c3c-9f7a-3c9f1d2e4b5a","latitude":123.4}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.ClockIn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&fakeService{
		getAllFn: func(ctx context.Context, filter ListFilter) ([]AttendanceResponse, int64, error) {
			assert.Equal(t, "LATE", filter.Status)
			return []AttendanceResponse{{ID: "1", Status: "LATE"}}, 1, nil
		},
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendances?status=LATE", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
