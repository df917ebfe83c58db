package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func TestChatRateLimitThrottles(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer cache.Close()

	app := fiber.New()
	app.Use(ChatRateLimit(cache, 2))
	app.Post("/chat", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	send := func() int {
		req := httptest.NewRequest(fiber.MethodPost, "/chat", strings.NewReader(`{"session_id":"s1"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	if send() != fiber.StatusOK || send() != fiber.StatusOK {
		t.Fatal("expected first two messages to pass")
	}
	if send() != fiber.StatusTooManyRequests {
		t.Fatal("expected third message to be throttled")
	}
}

func TestChatRateLimitNoopWithoutRedis(t *testing.T) {
	app := fiber.New()
	app.Use(ChatRateLimit(nil, 1))
	app.Post("/chat", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/chat", strings.NewReader(`{"session_id":"s1"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d throttled without redis", i)
		}
	}
}
