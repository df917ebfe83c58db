package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bk-assist/bk_assist/internal/chat"
)

// RegisterChatRoutes wires the conversational endpoints. The rate limiter
// only guards message exchange; starting a session is cheap.
func RegisterChatRoutes(router fiber.Router, h *chat.Handler, rateLimiter fiber.Handler) {
	router.Post("/session", h.StartSession)
	router.Post("/chat", rateLimiter, h.Exchange)
}
