package middleware

import (
	"strings"

	"event-contact-system/internal/global/cache"
	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Auth 校验 Bearer 令牌并把解析出的 Claims 存入上下文
// rdb 非空时额外检查令牌是否已被注销吊销
func Auth(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		payload, valid := jwt.ParseToken(token)
		if !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		revoked, err := cache.TokenRevoked(c.Request.Context(), rdb, payload.Id)
		if err != nil {
			response.Fail(c, response.ErrServerInternal.WithOrigin(err))
			c.Abort()
			return
		}
		if revoked {
			response.Fail(c, response.ErrTokenInvalid.WithTips("令牌已注销"))
			c.Abort()
			return
		}

		c.Set("payload", payload)
		c.Next()
	}
}
