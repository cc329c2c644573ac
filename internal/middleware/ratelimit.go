package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Hop-Syder/nexus-connect-t4/internal/database"
	"github.com/Hop-Syder/nexus-connect-t4/internal/services"
)

const (
	// RateLimitWindow is the sliding window for the per-IP counter.
	RateLimitWindow = 60 * time.Second
	// RateLimitMaxRequests is the maximum number of requests allowed in the window.
	RateLimitMaxRequests = 60
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting.
	RateLimitKeyPrefix = "ratelimit:"
	// BlockedIPKeyPrefix is the Redis key prefix for blocked IPs.
	BlockedIPKeyPrefix = "blocked_ip:"
	// BlockedIPDuration is how long an IP stays blocked.
	BlockedIPDuration = 6 * time.Hour
)

// RateLimit provides per-IP rate limiting with temporary blocking. Fails open
// when Redis is unavailable.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ipAddress := services.GetIPAddress(r)
		ctx := context.Background()

		blockedKey := BlockedIPKeyPrefix + ipAddress
		if blocked, err := database.RedisClient.Exists(ctx, blockedKey).Result(); err == nil && blocked > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"Your IP has been temporarily blocked due to excessive requests. Please try again later."}`))
			return
		}

		rateLimitKey := RateLimitKeyPrefix + ipAddress
		newCount, err := database.RedisClient.Incr(ctx, rateLimitKey).Result()
		if err != nil {
			// Redis down: allow the request
			next.ServeHTTP(w, r)
			return
		}
		if newCount == 1 {
			database.RedisClient.Expire(ctx, rateLimitKey, RateLimitWindow)
		}

		if newCount > RateLimitMaxRequests {
			database.RedisClient.Set(ctx, blockedKey, "1", BlockedIPDuration)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(fmt.Sprintf(`{"success":false,"message":"Rate limit exceeded. Your IP has been temporarily blocked. Please try again later.","retry_after":%d}`, int(RateLimitWindow.Seconds()))))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(RateLimitMaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(RateLimitMaxRequests-newCount, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(RateLimitWindow).Unix(), 10))

		next.ServeHTTP(w, r)
	})
}
