package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/funding"
)

// RegisterFundingRoutes wires deposit and withdrawal endpoints.
func RegisterFundingRoutes(r fiber.Router, h *funding.Handler) {
	r.Post("/accounts/:accountId/deposits", h.Deposit)
	r.Post("/accounts/:accountId/withdrawals", h.Withdraw)
}
