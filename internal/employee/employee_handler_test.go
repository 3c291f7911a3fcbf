package employee_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speed-hrm/internal/employee"
	employeeerrors "speed-hrm/internal/employee/errors"
	employeeMock "speed-hrm/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	t.Run("pagination meta", func(t *testing.T) {
		svc.EXPECT().
			GetAll(gomock.Any(), employee.ListFilter{
				ListQuery: employee.ListQuery{Search: "ayesha", SortBy: "email", SortDir: "desc"},
				Limit:     5,
				Offset:    5,
			}).
			Return([]employee.EmployeeResponse{{ID: "1", FullName: "Ayesha"}}, int64(6), nil)

		c, w := newContext(http.MethodGet, "/employees?q=ayesha&sort_by=email&sort_dir=desc&page=2&page_size=5", "")
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPages":2`)
	})

	t.Run("unknown sort column", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/employees?sort_by=salary", "")
		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	t.Run("invalid email", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/employees", `{"full_name":"A","email":"nope","joining_date":"2024-01-01"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"VALIDATION_ERROR"`)
	})

	t.Run("conflict", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists)

		c, w := newContext(http.MethodPost, "/employees", `{"full_name":"A","email":"a@b.co","salary":"1000.50","joining_date":"2024-01-01"}`)
		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_Transfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := employeeMock.NewMockService(ctrl)
	h := employee.NewHandler(svc)

	svc.EXPECT().
		Transfer(gomock.Any(), "e1", gomock.Any()).
		Return(employee.TransferResponse{ID: "t1", EmployeeID: "e1"}, nil)

	c, w := newContext(http.MethodPost, "/employees/e1/transfer",
		`{"to_department_id":"0b8f6c1e-2f0c-4c3c-9f7a-3c9f1d2e4b5a","effective_date":"2025-01-01"}`)
	c.Params = gin.Params{{Key: "id", Value: "e1"}}
	h.Transfer(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Employee transferred"`)
}
