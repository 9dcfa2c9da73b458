package middleware

import (
	"Corkboard/internal/api/config"
	"Corkboard/internal/pkg/redis"
	"Corkboard/internal/pkg/response"
	"Corkboard/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
// 签发在用户服务，这里只验签；已注销的 token 以签名为键记在 Redis 黑名单里
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Authorization token missing or malformed")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Authorization token missing or malformed")
			c.Abort()
			return
		}

		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, response.Unauthorized, "Token invalid or expired")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(config.Cfg.JWT.Secret, tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token invalid or expired")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
