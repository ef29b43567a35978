package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/identity"
)

// RegisterIdentityRoutes wires user registration and lookup endpoints.
func RegisterIdentityRoutes(r fiber.Router, h *identity.Handler, accounts *account.Handler) {
	users := r.Group("/users")
	users.Post("/", h.Register)
	users.Get("/", h.Search)
	users.Get("/:userId", h.Get)
	users.Get("/:userId/accounts", accounts.ListByUser)
}
