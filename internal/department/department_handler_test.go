package department_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speed-hrm/internal/department"
	departmenterrors "speed-hrm/internal/department/errors"
	"speed-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDepartmentService struct {
	GetAllFn     func(ctx context.Context, filter department.ListFilter) ([]department.DepartmentResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (department.DepartmentResponse, error)
	CreateFn     func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	BulkCreateFn func(ctx context.Context, req department.BulkCreateDepartmentRequest) (response.BulkCreateResult, error)
	UpdateFn     func(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
	BulkDeleteFn func(ctx context.Context, ids []string) (response.BulkDeleteResult, error)
}

func (f *fakeDepartmentService) GetAll(ctx context.Context, filter department.ListFilter) ([]department.DepartmentResponse, error) {
	return f.GetAllFn(ctx, filter)
}
func (f *fakeDepartmentService) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeDepartmentService) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeDepartmentService) BulkCreate(ctx context.Context, req department.BulkCreateDepartmentRequest) (response.BulkCreateResult, error) {
	return f.BulkCreateFn(ctx, req)
}
func (f *fakeDepartmentService) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeDepartmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeDepartmentService) BulkDelete(ctx context.Context, ids []string) (response.BulkDeleteResult, error) {
	return f.BulkDeleteFn(ctx, ids)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestDepartmentHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{ID: uuid.New().String(), Name: req.Name, Status: "active"}, nil
			},
		}
		h := department.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/departments", `{"name":"HR"}`)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"Department created"`)
	})

	t.Run("validation error", func(t *testing.T) {
		h := department.NewHandler(&fakeDepartmentService{})
		c, w := newContext(http.MethodPost, "/departments", `{"status":"archived"}`)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("internal error is generic", func(t *testing.T) {
		svc := &fakeDepartmentService{
			CreateFn: func(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
				return department.DepartmentResponse{}, errors.New("pq: relation does not exist")
			},
		}
		h := department.NewHandler(svc)
		c, w := newContext(http.MethodPost, "/departments", `{"name":"HR"}`)

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "relation")
	})
}

func TestDepartmentHandler_GetByID(t *testing.T) {
	svc := &fakeDepartmentService{
		GetByIDFn: func(ctx context.Context, id string) (department.DepartmentResponse, error) {
			assert.Equal(t, "missing", id)
			return department.DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		},
	}
	h := department.NewHandler(svc)
	c, w := newContext(http.MethodGet, "/departments/missing", "")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"status":false`)
}

func TestDepartmentHandler_BulkCreate(t *testing.T) {
	svc := &fakeDepartmentService{
		BulkCreateFn: func(ctx context.Context, req department.BulkCreateDepartmentRequest) (response.BulkCreateResult, error) {
			assert.Len(t, req.Items, 2)
			return response.BulkCreateResult{Created: 1, Skipped: 1}, nil
		},
	}
	h := department.NewHandler(svc)
	c, w := newContext(http.MethodPost, "/departments/bulk", `{"items":[{"name":"A"},{"name":"A"}]}`)

	h.BulkCreate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"skipped":1`)
}

func TestDepartmentHandler_Delete(t *testing.T) {
	svc := &fakeDepartmentService{
		DeleteFn: func(ctx context.Context, id string) error {
			return departmenterrors.ErrDepartmentInUse
		},
	}
	h := department.NewHandler(svc)
	c, w := newContext(http.MethodDelete, "/departments/x", "")
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"INVALID_STATE"`)
}
