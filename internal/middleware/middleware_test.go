package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"speed-hrm/internal/middleware"
	"speed-hrm/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return token
}

type fakeRBAC struct {
	allowed bool
	err     error
	calls   []string
}

func (f *fakeRBAC) Enforce(role, resource, action string) (bool, error) {
	f.calls = append(f.calls, role+":"+resource+":"+action)
	return f.allowed, f.err
}

func TestAuthMiddleware(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.AuthMiddleware(testSecret))
	r.GET("/me", func(c *gin.Context) {
		actor := contextutil.GetActor(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "role": actor.Role})
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "u-1",
			"role":    "hr",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u-1","role":"hr"}`, w.Body.String())
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": "u-1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("token without user id", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"role": "admin", "exp": time.Now().Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})
}

func TestRBACAuthorize(t *testing.T) {
	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(middleware.ContextRole, role)
			c.Next()
		}
	}

	t.Run("allowed", func(t *testing.T) {
		rbac := &fakeRBAC{allowed: true}
		r := setupRouter()
		r.GET("/x", withRole("viewer"), middleware.RBACAuthorize(rbac, "department", "read"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, []string{"viewer:department:read"}, rbac.calls)
	})

	t.Run("denied", func(t *testing.T) {
		r := setupRouter()
		r.DELETE("/x", withRole("viewer"), middleware.RBACAuthorize(&fakeRBAC{}, "department", "delete"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "department:delete")
	})

	t.Run("enforcer error", func(t *testing.T) {
		r := setupRouter()
		r.GET("/x", withRole("admin"), middleware.RBACAuthorize(&fakeRBAC{err: errors.New("boom")}, "department", "read"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})

	t.Run("no role", func(t *testing.T) {
		r := setupRouter()
		r.GET("/x", middleware.RBACAuthorize(&fakeRBAC{allowed: true}, "department", "read"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := setupRouter()
	r.Use(middleware.RequestID())
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.HeaderRequestID, "rid-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-123", w.Body.String())
	assert.Equal(t, "rid-123", w.Header().Get(middleware.HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, w.Body.String())
}

func TestRateLimitByIP(t *testing.T) {
	r := setupRouter()
	r.GET("/x", middleware.RateLimitByIP(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestIdempotency(t *testing.T) {
	t.Run("replays stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		body, _ := json.Marshal(gin.H{"status": true, "data": gin.H{"created": 2, "skipped": 0}})
		stored, _ := json.Marshal(map[string]any{"status": http.StatusCreated, "body": json.RawMessage(body)})
		mock.ExpectGet("idemp:POST:/bulk::key-1").SetVal(string(stored))

		calls := 0
		r := setupRouter()
		r.POST("/bulk", middleware.Idempotency(rdb), func(c *gin.Context) {
			calls++
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/bulk", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, 0, calls)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
		assert.JSONEq(t, string(body), w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in flight duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("idemp:POST:/bulk::key-2").RedisNil()
		mock.ExpectSetNX("idemp:POST:/bulk::key-2:lock", "locked", 30*time.Second).SetVal(false)

		r := setupRouter()
		r.POST("/bulk", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodPost, "/bulk", nil)
		req.Header.Set(middleware.HeaderIdempotencyKey, "key-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without key passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		r := setupRouter()
		r.POST("/bulk", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bulk", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
