package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bk-assist/bk_assist/internal/chat"
	"github.com/bk-assist/bk_assist/internal/config"
	"github.com/bk-assist/bk_assist/internal/conversation"
	"github.com/bk-assist/bk_assist/internal/faq"
	"github.com/bk-assist/bk_assist/internal/middleware"
	"github.com/bk-assist/bk_assist/internal/oracle"
	"github.com/bk-assist/bk_assist/internal/otp"
	"github.com/bk-assist/bk_assist/internal/records"
	"github.com/bk-assist/bk_assist/internal/retry"
	"github.com/bk-assist/bk_assist/internal/session"
)

const chatMessagesPerMinute = 20

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Stores: Postgres in deployment, seeded in-memory fixtures in dev.
	var recordsRepo records.Repository
	var faqStore faq.Store
	if d.DB != nil {
		recordsRepo = records.NewPostgresRepository(d.DB)
		faqStore = faq.NewPostgresStore(d.DB)
	} else {
		recordsRepo = records.NewMemoryRepository(devRecords)
		faqStore = faq.NewMemoryStore(devFAQ)
	}

	var sessionStore session.Store
	if d.Cache != nil {
		sessionStore = session.NewRedisStore(d.Cache, d.Cfg.SessionTTL)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	// Oracle and OTP delivery channels, all under the bounded retry policy.
	policy := retry.Default()
	var oracleClient oracle.Client = oracle.NewGeminiClient(d.Cfg.OracleAPIKey, d.Cfg.OracleModel, d.Cfg.OracleEndpoint)
	oracleClient = oracle.WithRetry(oracleClient, policy)

	var emailSender otp.Sender
	if d.Cfg.SMTPHost != "" {
		emailSender = otp.NewEmailSender(d.Cfg.SMTPHost, d.Cfg.SMTPPort, d.Cfg.SMTPUser, d.Cfg.SMTPPass, d.Cfg.SMTPFrom, policy)
	} else {
		emailSender = otp.NewSMSSender(d.Logger) // log-only fallback when SMTP is not configured
	}
	smsSender := otp.NewSMSSender(d.Logger)

	recordsSvc := records.NewService(recordsRepo)
	matcher := faq.NewMatcher(faqStore, oracleClient)
	engine := conversation.NewEngine(recordsSvc, matcher, oracleClient, emailSender, smsSender, d.Logger)
	chatHandler := chat.NewHandler(sessionStore, engine, d.Logger)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	rateLimiter := middleware.ChatRateLimit(d.Cache, chatMessagesPerMinute)
	RegisterChatRoutes(api, chatHandler, rateLimiter)

	return nil
}

// devRecords seeds the in-memory records store for database-less runs.
var devRecords = []records.Record{
	{
		Name:    "Alice Uwase",
		Account: "040-1234567-01",
		DOB:     "01-02-1990",
		Phone:   "250788123456",
		Email:   "alice@example.com",
		OTP:     "482913",
	},
	{
		Name:    "Jean Bosco",
		Account: "040-7654321-02",
		DOB:     "11-30-1985",
		Phone:   "250788654321",
		Email:   "jean@example.com",
		OTP:     "119275",
	},
}

var devFAQ = []faq.Entry{
	{Language: "English", Category: "Cards", Question: "My card is blocked", Answer: "Visit any BK branch with your ID to unblock your card."},
	{Language: "English", Category: "Mobile Banking", Question: "Mobile app not working", Answer: "Reinstall the BK app and log in again. If the problem persists call (+250) 788 143 000."},
	{Language: "French", Category: "Cartes", Question: "Ma carte est bloquée", Answer: "Rendez-vous dans une agence BK avec votre pièce d'identité."},
	{Language: "Kinyarwanda", Category: "Konti", Question: "Sinabona amafaranga yanjye", Answer: "Hamagara (+250) 788 143 000 cyangwa usure ishami rya BK."},
}
