package middleware

import (
	"sync"
	"time"

	"event-contact-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiter 按客户端 IP 维护独立的令牌桶
type rateLimiter struct {
	limiters map[string]*rate.Limiter
	mutex    sync.Mutex
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMinute, burst int) *rateLimiter {
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
	}
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// RateLimit 针对注册、登录等敏感端点的按 IP 限流
func RateLimit(requestsPerMinute, burst int) gin.HandlerFunc {
	rl := newRateLimiter(requestsPerMinute, burst)
	return func(c *gin.Context) {
		if !rl.get(c.ClientIP()).Allow() {
			response.Fail(c, response.ErrInvalidRequest.WithTips("请求过于频繁，请稍后再试"))
			c.Abort()
			return
		}
		c.Next()
	}
}
