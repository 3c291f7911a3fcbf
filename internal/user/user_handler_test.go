package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speed-hrm/internal/user"
	usererrors "speed-hrm/internal/user/errors"
	userMock "speed-hrm/internal/user/mock"

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

func TestUserHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	h := user.NewHandler(svc)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(user.UserResponse{ID: "u1", Role: "viewer"}, nil)

		c, w := newContext(http.MethodPost, "/users",
			`{"email":"v@example.com","name":"Viewer","password":"password123","role":"viewer"}`)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "password123")
	})

	t.Run("unknown role", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/users",
			`{"email":"v@example.com","name":"Viewer","password":"password123","role":"root"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		c, w := newContext(http.MethodPost, "/users",
			`{"email":"v@example.com","name":"Viewer","password":"short","role":"viewer"}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(user.UserResponse{}, usererrors.ErrUserAlreadyExists)

		c, w := newContext(http.MethodPost, "/users",
			`{"email":"v@example.com","name":"Viewer","password":"password123","role":"viewer"}`)
		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	h := user.NewHandler(svc)

	svc.EXPECT().Delete(gomock.Any(), "u1").Return(usererrors.ErrUserNotFound)

	c, w := newContext(http.MethodDelete, "/users/u1", "")
	c.Params = gin.Params{{Key: "id", Value: "u1"}}
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
