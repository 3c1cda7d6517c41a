package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Sumedhatongle/employee-management-system/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards re-submitted POSTs (double-tapped punch buttons). A
// client sending an Idempotency-Key gets the cached response on replay, or
// a 409 while the first attempt is still in flight. The lock is released
// here once the handler returns, whatever its outcome, so a rejected
// request never blocks a corrected retry; handlers fill the cache through
// the context key set here.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := contextutil.GetUserID(c.Request.Context())

		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			_ = json.Unmarshal([]byte(val), &cached)
			c.AbortWithStatusJSON(http.StatusOK, gin.H{"ok": true, "data": cached})
			return
		}

		// Short lock expiry so a crashed worker cannot wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A previous attempt with this key is still being processed",
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)

		c.Next()

		rdb.Del(c.Request.Context(), lockKey)
	}
}
