package taxslab_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speed-hrm/internal/taxslab"
	taxslabMock "speed-hrm/internal/taxslab/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTaxSlabHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := taxslabMock.NewMockService(ctrl)
	h := taxslab.NewHandler(svc)

	t.Run("missing fiscal year", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/tax-slabs", strings.NewReader(`{"name":"Band 1"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(taxslab.TaxSlabResponse{ID: "t1"}, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"name":"Band 1","fiscal_year":"2024-2025","min_income":0,"max_income":"600000","rate":0}`
		c.Request = httptest.NewRequest(http.MethodPost, "/tax-slabs", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Tax slab created")
	})
}
