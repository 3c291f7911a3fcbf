package bonus_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"speed-hrm/internal/bonus"
	bonuserrors "speed-hrm/internal/bonus/errors"
	bonusMock "speed-hrm/internal/bonus/mock"
	"speed-hrm/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	apperror.Init()
	os.Exit(m.Run())
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBonusHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bonusMock.NewMockService(ctrl)
	h := bonus.NewHandler(svc)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(bonus.CreateBonusResult{Created: 1, Items: []bonus.BonusResponse{{ID: "b1"}}}, nil)

		body := `{"items":[{"employee_id":"` + employeeID + `","bonus_type_id":"` + typeID +
			`","amount":1000,"bonus_month_year":"2024-03","adjustment_method":"distributed-remaining-months"}]}`
		c, w := newContext(http.MethodPost, "/bonuses", body)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"created":1`)
	})

	t.Run("empty items", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/bonuses", `{"items":[]}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad payment method", func(t *testing.T) {
		body := `{"items":[{"employee_id":"` + employeeID + `","bonus_type_id":"` + typeID +
			`","amount":10,"bonus_month_year":"2024-03","payment_method":"cash"}]}`
		c, w := newContext(http.MethodPost, "/bonuses", body)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bonus.CreateBonusResult{}, bonuserrors.ErrInvalidReference)

		body := `{"items":[{"employee_id":"` + employeeID + `","bonus_type_id":"` + typeID +
			`","amount":10,"bonus_month_year":"2024-03"}]}`
		c, w := newContext(http.MethodPost, "/bonuses", body)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})
}

func TestBonusHandler_GetByID_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := bonusMock.NewMockService(ctrl)
	h := bonus.NewHandler(svc)

	svc.EXPECT().GetByID(gomock.Any(), "x").Return(bonus.BonusResponse{}, bonuserrors.ErrBonusNotFound)

	c, w := newContext(http.MethodGet, "/bonuses/x", "")
	c.Params = gin.Params{{Key: "id", Value: "x"}}
	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
