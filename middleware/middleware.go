package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

// ContextUserID is the Gin context key holding the authenticated user id.
const ContextUserID = "user_id"

// AuthMiddleware requires a valid Bearer token and stores the user id in the
// context. Requests without a valid session get a 401.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromHeader(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the session when one is present but lets
// anonymous requests through. Public browse and private management share the
// same listing endpoint and differ only by this.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := userIDFromHeader(c.GetHeader("Authorization"), jwtSecret); err == nil {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

func userIDFromHeader(header, jwtSecret string) (string, error) {
	if header == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", fmt.Errorf("invalid authorization header")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("missing user_id claim")
	}

	return userID, nil
}

const limiterCleanupInterval = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP. Idle buckets are swept
// lazily on lookup, so no background goroutine is needed.
type RateLimiter struct {
	limiters    map[string]*rate.Limiter
	mutex       sync.Mutex
	rate        rate.Limit
	burst       int
	lastCleanup time.Time
}

func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	return &RateLimiter{
		limiters:    make(map[string]*rate.Limiter),
		rate:        rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	if time.Since(rl.lastCleanup) >= limiterCleanupInterval {
		rl.cleanupLocked()
		rl.lastCleanup = time.Now()
	}

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// cleanupLocked drops limiters with a full bucket; they belong to clients
// that have gone quiet. Caller holds the mutex.
func (rl *RateLimiter) cleanupLocked() {
	for key, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(rl.burst) {
			delete(rl.limiters, key)
		}
	}
}

// RateLimit limits each client IP to requestsPerMinute with the given burst.
func RateLimit(requestsPerMinute, burst int) gin.HandlerFunc {
	rateLimiter := NewRateLimiter(requestsPerMinute, burst)

	return func(c *gin.Context) {
		limiter := rateLimiter.GetLimiter(c.ClientIP())

		if !limiter.Allow() {
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": fmt.Sprintf("Too many requests. Limit: %d requests per minute", requestsPerMinute),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// SecurityHeaders adds the standard security response headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
