package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/bk-assist/bk_assist/internal/conversation"
	"github.com/bk-assist/bk_assist/internal/logging"
	"github.com/bk-assist/bk_assist/internal/oracle"
	"github.com/bk-assist/bk_assist/internal/otp"
	"github.com/bk-assist/bk_assist/internal/records"
	"github.com/bk-assist/bk_assist/internal/session"
)

type noMatcher struct{}

func (noMatcher) Match(context.Context, string, string) (string, bool) { return "", false }

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := logging.Discard()
	recs := records.NewService(records.NewMemoryRepository([]records.Record{{
		Name: "Alice Uwase", Account: "040-1234567-01", DOB: "01-02-1990",
		Phone: "250788123456", Email: "alice@example.com", OTP: "482913",
	}}))
	client := oracle.ClientFunc(func(context.Context, string) (string, error) {
		return "BK answer", nil
	})
	sms := otp.NewSMSSender(logger)
	engine := conversation.NewEngine(recs, noMatcher{}, client, sms, sms, logger)

	handler := NewHandler(session.NewMemoryStore(), engine, logger)

	app := fiber.New()
	app.Post("/api/v1/session", handler.StartSession)
	app.Post("/api/v1/chat", handler.Exchange)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp.StatusCode, decoded
}

func TestStartSessionSeedsWelcome(t *testing.T) {
	app := setupTestApp(t)

	status, body := postJSON(t, app, "/api/v1/session", map[string]any{})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d", status)
	}
	if body["state"] != "menu" {
		t.Fatalf("state = %v, want menu", body["state"])
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected welcome + menu, got %d messages", len(msgs))
	}
}

func TestExchangeAdvancesState(t *testing.T) {
	app := setupTestApp(t)

	_, created := postJSON(t, app, "/api/v1/session", map[string]any{})
	id, _ := created["session_id"].(string)
	if id == "" {
		t.Fatal("no session id returned")
	}

	status, body := postJSON(t, app, "/api/v1/chat", map[string]any{"session_id": id, "message": "1"})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body["state"] != "identity_verify" {
		t.Fatalf("state = %v, want identity_verify", body["state"])
	}
	msgs, _ := body["messages"].([]any)
	// welcome, menu, user "1", name prompt
	if len(msgs) != 4 {
		t.Fatalf("expected 4 transcript messages, got %d", len(msgs))
	}
}

func TestExchangeUnknownSession(t *testing.T) {
	app := setupTestApp(t)

	status, _ := postJSON(t, app, "/api/v1/chat", map[string]any{"session_id": "nope", "message": "1"})
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestExchangeRequiresSessionID(t *testing.T) {
	app := setupTestApp(t)

	status, _ := postJSON(t, app, "/api/v1/chat", map[string]any{"message": "1"})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}
