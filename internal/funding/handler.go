package funding

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/validation"
)

// Handler exposes HTTP endpoints for deposits and withdrawals.
type Handler struct {
	service *Service
}

// NewHandler constructs a funding handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Deposit credits the account in the path.
func (h *Handler) Deposit(c *fiber.Ctx) error {
	input, err := parseMovement(c)
	if err != nil {
		return err
	}
	result, err := h.service.Deposit(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toResponse(result))
}

// Withdraw debits the account in the path.
func (h *Handler) Withdraw(c *fiber.Ctx) error {
	input, err := parseMovement(c)
	if err != nil {
		return err
	}
	result, err := h.service.Withdraw(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(toResponse(result))
}

func parseMovement(c *fiber.Ctx) (Input, error) {
	var req MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return Input{}, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return Input{}, err
	}
	return Input{
		AccountID:   c.Params("accountId"),
		Amount:      req.Amount.String(),
		Description: req.Description,
	}, nil
}
