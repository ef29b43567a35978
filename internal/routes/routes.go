package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/config"
	"github.com/walletsim/walletsim/internal/funding"
	"github.com/walletsim/walletsim/internal/identity"
	"github.com/walletsim/walletsim/internal/ledger"
	"github.com/walletsim/walletsim/internal/middleware"
	"github.com/walletsim/walletsim/internal/notification"
	"github.com/walletsim/walletsim/internal/payments"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes over in-memory stores.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.RateLimit(d.Cache, d.Cfg.RateLimit, d.Logger))
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Stores
	userRepo := identity.NewMemoryRepository()
	accountRepo := account.NewMemoryRepository()
	ledgerRepo := ledger.NewInMemory()
	locker := account.NewLocker()

	// Services and handlers
	identitySvc := identity.NewService(userRepo)
	accountSvc := account.NewService(accountRepo, userRepo, d.Cfg.DefaultCurrency)
	historySvc := ledger.NewService(ledgerRepo, accountRepo)
	fundingSvc := funding.NewService(accountRepo, ledgerRepo, locker)
	paymentSvc := payments.NewService(accountRepo, ledgerRepo, locker, notification.NewLoggerNotifier(d.Logger))

	accountHandler := account.NewHandler(accountSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.GetRequestID(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterIdentityRoutes(api, identity.NewHandler(identitySvc), accountHandler)
	RegisterAccountRoutes(api, accountHandler, ledger.NewHandler(historySvc))
	RegisterFundingRoutes(api, funding.NewHandler(fundingSvc))
	RegisterPaymentRoutes(api, payments.NewHandler(paymentSvc))

	return nil
}
