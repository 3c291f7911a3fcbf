package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"speed-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated Idempotency-Key on
// POST and DELETE requests. Requests without the header, or any request when
// redis is unavailable, pass straight through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		method := c.Request.Method
		if rdb == nil || idempKey == "" || (method != http.MethodPost && method != http.MethodDelete) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s:%s", method, c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var stored storedResponse
			if json.Unmarshal([]byte(val), &stored) == nil {
				c.Header("Idempotent-Replayed", "true")
				c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed, continuing without it", zap.String("key", lockKey), zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "A request with this idempotency key is still being processed", nil)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		if status := rec.Status(); status < http.StatusInternalServerError {
			payload, err := json.Marshal(storedResponse{Status: status, Body: rec.buf.Bytes()})
			if err == nil {
				if err := rdb.Set(ctx, cacheKey, string(payload), idempotencyResultTTL).Err(); err != nil {
					log.Warn("store idempotent response failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			log.Warn("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
