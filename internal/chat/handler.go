package chat

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bk-assist/bk_assist/internal/conversation"
	"github.com/bk-assist/bk_assist/internal/session"
)

// Handler exposes the conversational endpoints: session creation and one
// message exchange per request.
type Handler struct {
	store  session.Store
	engine *conversation.Engine
	logger *slog.Logger
}

// NewHandler builds the chat handler.
func NewHandler(store session.Store, engine *conversation.Engine, logger *slog.Logger) *Handler {
	return &Handler{store: store, engine: engine, logger: logger}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string            `json:"session_id"`
	Messages  []session.Message `json:"messages"`
	State     string            `json:"state"`
}

// StartSession creates a fresh session seeded with the welcome messages.
func (h *Handler) StartSession(c *fiber.Ctx) error {
	sess := session.New(uuid.NewString())
	h.engine.Greet(&sess)

	if err := h.store.Save(c.UserContext(), sess); err != nil {
		h.logger.Error("save new session", "error", err)
		return fiber.NewError(http.StatusInternalServerError, "could not create session")
	}

	return c.Status(http.StatusCreated).JSON(chatResponse{
		SessionID: sess.ID,
		Messages:  sess.Messages,
		State:     string(sess.State),
	})
}

// Exchange processes one user message within an existing session and
// returns the updated transcript and state. A conversation turn never
// fails; only transport-level problems (unknown session, store outage)
// produce error statuses.
func (h *Handler) Exchange(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return fiber.NewError(http.StatusBadRequest, "session_id is required")
	}

	sess, err := h.store.Get(c.UserContext(), req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "unknown or expired session")
		}
		h.logger.Error("load session", "session_id", req.SessionID, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "could not load session")
	}

	h.engine.Respond(c.UserContext(), &sess, req.Message)

	if err := h.store.Save(c.UserContext(), sess); err != nil {
		h.logger.Error("save session", "session_id", sess.ID, "error", err)
		return fiber.NewError(http.StatusInternalServerError, "could not save session")
	}

	return c.JSON(chatResponse{
		SessionID: sess.ID,
		Messages:  sess.Messages,
		State:     string(sess.State),
	})
}
