package payments

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/ledger"
	"github.com/walletsim/walletsim/internal/validation"
)

// Handler exposes payment endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type transferRequest struct {
	FromAccountID string      `json:"from_account_id" validate:"required"`
	ToAccountID   string      `json:"to_account_id" validate:"required"`
	Amount        json.Number `json:"amount" validate:"required"`
	Description   string      `json:"description,omitempty" validate:"max=140"`
}

type transferResponse struct {
	Source      account.Response           `json:"source"`
	Destination account.Response           `json:"destination"`
	Sent        ledger.TransactionResponse `json:"sent"`
	Received    ledger.TransactionResponse `json:"received"`
	CompletedAt time.Time                  `json:"completed_at"`
}

// Transfer processes an account-to-account transfer.
func (h *Handler) Transfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	res, err := h.service.Transfer(c.UserContext(), TransferInput{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount.String(),
		Description:   req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(transferResponse{
		Source:      account.ToResponse(res.Source),
		Destination: account.ToResponse(res.Destination),
		Sent:        ledger.ToResponse(res.Sent),
		Received:    ledger.ToResponse(res.Received),
		CompletedAt: res.CompletedAt,
	})
}
