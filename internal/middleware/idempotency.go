package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// Idempotency replays the stored result of a POST carrying the same
// Idempotency-Key and rejects a duplicate that arrives while the first is in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	log := zap.L().Named("middleware.idempotency")

	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString(ContextUserID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				log.Debug("idempotent replay", zap.String("key", cacheKey))
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING", "The same request is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

// IdempotencyFinish stores data for replay (when non-nil) and releases the in-flight lock.
func IdempotencyFinish(c *gin.Context, rdb *redis.Client, data any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()

	if data != nil {
		if ck := c.GetString(idempotencyCacheKey); ck != "" {
			if payload, err := json.Marshal(data); err == nil {
				_ = rdb.Set(ctx, ck, payload, idempotencyResultTTL).Err()
			}
		}
	}

	if lk := c.GetString(idempotencyLockKey); lk != "" {
		_ = rdb.Del(ctx, lk).Err()
	}
}
