package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/ledger"
)

// RegisterAccountRoutes wires account and history endpoints.
func RegisterAccountRoutes(r fiber.Router, h *account.Handler, history *ledger.Handler) {
	accounts := r.Group("/accounts")
	accounts.Post("/", h.Create)
	accounts.Get("/number/:number", h.GetByNumber)
	accounts.Get("/:accountId", h.Get)
	accounts.Get("/:accountId/transactions", history.History)
}
