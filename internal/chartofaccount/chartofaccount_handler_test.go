package chartofaccount_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speed-hrm/internal/chartofaccount"
	chartofaccounterrors "speed-hrm/internal/chartofaccount/errors"
	chartofaccountMock "speed-hrm/internal/chartofaccount/mock"

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

func TestChartOfAccountHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := chartofaccountMock.NewMockService(ctrl)
	h := chartofaccount.NewHandler(svc)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(chartofaccount.AccountResponse{ID: "a1", Code: "1103"}, nil)

		c, w := newContext(http.MethodPost, "/chart-of-accounts", `{"code":"1103","name":"Prepayments","type":"ASSET"}`)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Account created")
	})

	t.Run("unknown type", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/chart-of-accounts", `{"code":"1103","name":"Prepayments","type":"REVENUE"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("parent not group", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(chartofaccount.AccountResponse{}, chartofaccounterrors.ErrParentNotGroup)

		c, w := newContext(http.MethodPost, "/chart-of-accounts", `{"code":"1103","name":"Prepayments","type":"ASSET"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestChartOfAccountHandler_Tree(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := chartofaccountMock.NewMockService(ctrl)
	h := chartofaccount.NewHandler(svc)

	svc.EXPECT().GetTree(gomock.Any()).Return([]chartofaccount.TreeNode{{
		AccountResponse: chartofaccount.AccountResponse{Code: "1"},
		Children:        []chartofaccount.TreeNode{{AccountResponse: chartofaccount.AccountResponse{Code: "11"}}},
	}}, nil)

	c, w := newContext(http.MethodGet, "/chart-of-accounts/tree", "")
	h.GetTree(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"children"`)
}

func TestChartOfAccountHandler_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := chartofaccountMock.NewMockService(ctrl)
	h := chartofaccount.NewHandler(svc)

	svc.EXPECT().Seed(gomock.Any()).Return(chartofaccount.SeedResult{Created: 40}, nil)

	c, w := newContext(http.MethodPost, "/chart-of-accounts/seed", "")
	h.Seed(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"created":40`)
}
