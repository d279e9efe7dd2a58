package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/adapter"
	"github.com/feral-file/ff-marketplace/internal/logger"
)

// RateLimitConfig holds the per-client limit of mutating routes
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	KeyPrefix         string
}

// RateLimit limits requests per client IP with a shared Redis limiter.
// Requests are let through when Redis is unavailable.
func RateLimit(limiter adapter.RedisRateLimiter, cfg RateLimitConfig) gin.HandlerFunc {
	limit := redis_rate.PerMinute(cfg.RequestsPerMinute)
	if cfg.Burst > 0 {
		limit.Burst = cfg.Burst
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s%s", cfg.KeyPrefix, c.ClientIP())
		res, err := limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if res.Allowed == 0 {
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
				"code":  "rate_limited",
			})
			return
		}
		c.Next()
	}
}
