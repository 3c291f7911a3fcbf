package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"speed-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(41, 2, 20)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.PageSize)
}

func TestError_Envelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	response.Error(c, http.StatusNotFound, "NOT_FOUND", "Bonus not found", nil)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Bonus not found", body["message"])
	assert.NotContains(t, body, "data")
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/activity-logs", nil)

		p := response.ParsePage(c)

		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PageSize)
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("clamps page size", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/activity-logs?page=3&page_size=1000", nil)

		p := response.ParsePage(c)

		assert.Equal(t, 200, p.PageSize)
		assert.Equal(t, 400, p.Offset())
	})
}
