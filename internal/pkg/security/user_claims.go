package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 网关只关心 user_id 与过期时间，签发在用户服务侧
type UserClaims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}
