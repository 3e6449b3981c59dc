package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func newAuthRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", AuthMiddleware(testSecret), handler)
	r.GET("/mixed", OptionalAuthMiddleware(testSecret), handler)
	return r
}

func echoUserID(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
}

func TestAuthMiddleware(t *testing.T) {
	validToken := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{
			"wrong secret",
			"Bearer " + signToken(t, "other-secret", jwt.MapClaims{"user_id": "user-1", "exp": time.Now().Add(time.Hour).Unix()}),
			http.StatusUnauthorized,
		},
		{
			"expired token",
			"Bearer " + signToken(t, testSecret, jwt.MapClaims{"user_id": "user-1", "exp": time.Now().Add(-time.Hour).Unix()}),
			http.StatusUnauthorized,
		},
		{
			"missing user_id claim",
			"Bearer " + signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
			http.StatusUnauthorized,
		},
	}

	router := newAuthRouter(echoUserID)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := newAuthRouter(echoUserID)

	// Anonymous requests pass through with an empty user id.
	req := httptest.NewRequest(http.MethodGet, "/mixed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous status = %d", w.Code)
	}

	// Valid sessions are resolved.
	token := signToken(t, testSecret, jwt.MapClaims{
		"user_id": "user-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	req = httptest.NewRequest(http.MethodGet, "/mixed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d", w.Code)
	}
}

func TestRateLimiterSweepsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(60, 2)

	busy := rl.GetLimiter("ip-busy")
	busy.Allow()
	busy.Allow()
	rl.GetLimiter("ip-idle")

	// Not due yet: nothing is dropped.
	rl.GetLimiter("ip-other")
	if len(rl.limiters) != 3 {
		t.Fatalf("premature sweep: %d limiters, want 3", len(rl.limiters))
	}

	rl.lastCleanup = time.Now().Add(-limiterCleanupInterval)
	rl.GetLimiter("ip-new")

	if _, ok := rl.limiters["ip-idle"]; ok {
		t.Error("idle limiter with a full bucket should be swept")
	}
	if _, ok := rl.limiters["ip-busy"]; !ok {
		t.Error("active limiter must survive the sweep")
	}
	if _, ok := rl.limiters["ip-new"]; !ok {
		t.Error("looked-up limiter must exist after the sweep")
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", RateLimit(60, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("burst requests should pass, got %v", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request should be limited, got %v", statuses)
	}
}
