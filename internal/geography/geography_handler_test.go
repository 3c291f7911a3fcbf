package geography_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"speed-hrm/internal/geography"
	geographyMock "speed-hrm/internal/geography/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGeographyHandler_ResolveProvince(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := geography.NewHandler(geographyMock.NewMockService(ctrl))

	tests := []struct {
		name   string
		query  string
		status int
		want   string
	}{
		{name: "capital", query: "name=Tarlai&lat=33.65&lng=73.15", status: http.StatusOK, want: `"province":"Fana"`},
		{name: "known", query: "name=Karachi", status: http.StatusOK, want: `"province":"Sindh"`},
		{name: "missing name", query: "lat=33.65", status: http.StatusBadRequest},
		{name: "bad latitude", query: "name=X&lat=123", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/cities/resolve-province?"+tt.query, nil)

			h.ResolveProvince(c)

			assert.Equal(t, tt.status, w.Code)
			if tt.want != "" {
				assert.Contains(t, w.Body.String(), tt.want)
			}
		})
	}
}
