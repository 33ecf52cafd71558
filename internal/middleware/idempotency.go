package middleware

import (
	"encoding/json"
	"fmt"
	"go-geoattend/internal/shared/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
)

// Idempotency replays the stored response of a POST carrying a known
// Idempotency-Key and rejects a concurrent duplicate while the first one is
// still running. The handler stores the response under the cache key and
// releases the lock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost || rdb == nil {
			c.Next()
			return
		}

		userID := c.GetString("user_id_validated")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached any
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				c.Header("Idempotent-Replay", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			// cache outage: serve the request without replay protection
			zap.L().Warn("idempotency cache unavailable", zap.Error(err))
			c.Next()
			return
		}

		// a crashed request frees its lock after idempotencyLockTTL
		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !isNew {
			response.Error(c, http.StatusConflict, "PROCESSING",
				"A request with the same Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()
	}
}
