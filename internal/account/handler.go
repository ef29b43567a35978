package account

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/validation"
)

// Handler exposes account HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds an account HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

// Response is the JSON projection of an Account.
type Response struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	UserID    string    `json:"user_id"`
	Balance   string    `json:"balance"`
	Currency  string    `json:"currency"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToResponse projects an account for the API.
func ToResponse(a Account) Response {
	return Response{
		ID:        a.ID(),
		Number:    a.Number(),
		UserID:    a.UserID(),
		Balance:   a.Balance().StringFixed(),
		Currency:  a.Currency(),
		Active:    a.Active(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

// Create opens an account for a user.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return err
	}
	acct, err := h.service.Create(c.UserContext(), CreateInput{UserID: req.UserID, Currency: req.Currency})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(ToResponse(acct))
}

// Get returns the account and its current balance.
func (h *Handler) Get(c *fiber.Ctx) error {
	acct, err := h.service.Get(c.UserContext(), c.Params("accountId"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(ToResponse(acct))
}

// GetByNumber returns the account with the given number.
func (h *Handler) GetByNumber(c *fiber.Ctx) error {
	acct, err := h.service.GetByNumber(c.UserContext(), c.Params("number"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(ToResponse(acct))
}

// ListByUser returns every account of a user.
func (h *Handler) ListByUser(c *fiber.Ctx) error {
	accounts, err := h.service.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	out := make([]Response, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToResponse(a))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"accounts": out})
}
