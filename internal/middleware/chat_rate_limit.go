package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// ChatRateLimit bounds messages per session (falling back to client IP)
// using Redis when available. The conversation engine does real outbound
// work per turn, so runaway clients are throttled at the edge.
func ChatRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 20
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without Redis
		}
		var req struct {
			SessionID string `json:"session_id"`
		}
		_ = c.BodyParser(&req)
		key := strings.TrimSpace(req.SessionID)
		if key == "" {
			key = c.IP()
		}
		key = "rl:chat:" + key
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err == nil && cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many messages, slow down")
		}
		return c.Next()
	}
}
