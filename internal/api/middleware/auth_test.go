package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"

	"Corkboard/internal/api/config"
	"Corkboard/internal/pkg/redis"
	"Corkboard/internal/pkg/security"
)

const testSecret = "test-secret"

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	if err := redis.InitRedis(config.RedisConfig{Addr: mr.Addr()}); err != nil {
		t.Fatalf("init redis: %v", err)
	}

	config.Cfg = &config.Config{JWT: config.JWTConfig{Secret: testSecret}}

	r := gin.New()
	r.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint64("user_id")})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	r := setupAuthRouter(t)

	if w := doRequest(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: want 401, got %d", w.Code)
	}
	if w := doRequest(r, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer scheme: want 401, got %d", w.Code)
	}
	if w := doRequest(r, "Bearer not.a.token.at.all"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: want 401, got %d", w.Code)
	}
}

func TestAuthValidToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := security.GenerateToken(testSecret, 42, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := doRequest(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: want 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthExpiredToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := security.GenerateToken(testSecret, 42, -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if w := doRequest(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: want 401, got %d", w.Code)
	}
}

func TestAuthWrongSecret(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := security.GenerateToken("another-secret", 42, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if w := doRequest(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("forged token: want 401, got %d", w.Code)
	}
}

// 注销过的 token 以签名为键挂在黑名单里，验签通过也要拒绝
func TestAuthRevokedToken(t *testing.T) {
	r := setupAuthRouter(t)

	token, err := security.GenerateToken(testSecret, 42, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		t.Fatalf("extract signature: %v", err)
	}
	if err = redis.SetWithExpiration(context.Background(), signature, "revoked", time.Hour); err != nil {
		t.Fatalf("blacklist token: %v", err)
	}

	if w := doRequest(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token: want 401, got %d", w.Code)
	}
}
