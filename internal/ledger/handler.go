package ledger

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/walletsim/walletsim/internal/apperror"
)

// Handler exposes transaction history endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a history handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// TransactionResponse is the JSON projection of a Transaction.
type TransactionResponse struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	Amount        string    `json:"amount"`
	Currency      string    `json:"currency"`
	AccountID     string    `json:"account_id"`
	Counterparty  string    `json:"counterparty_account_id,omitempty"`
	Description   string    `json:"description"`
	BalanceBefore string    `json:"balance_before"`
	BalanceAfter  string    `json:"balance_after"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse projects a transaction for the API.
func ToResponse(tx Transaction) TransactionResponse {
	counterparty, _ := tx.Destination()
	return TransactionResponse{
		ID:            tx.ID(),
		Type:          tx.Type(),
		Amount:        tx.Amount().StringFixed(),
		Currency:      tx.Amount().Currency(),
		AccountID:     tx.AccountID(),
		Counterparty:  counterparty,
		Description:   tx.Description(),
		BalanceBefore: tx.BalanceBefore().StringFixed(),
		BalanceAfter:  tx.BalanceAfter().StringFixed(),
		CreatedAt:     tx.CreatedAt(),
	}
}

// History lists the transactions of an account. Query parameters: type, from, to
// (RFC 3339 or YYYY-MM-DD) and limit.
func (h *Handler) History(c *fiber.Ctx) error {
	from, err := parseTime(c.Query("from"), false)
	if err != nil {
		return err
	}
	to, err := parseTime(c.Query("to"), true)
	if err != nil {
		return err
	}

	txs, err := h.service.History(c.UserContext(), HistoryInput{
		AccountID: c.Params("accountId"),
		Type:      c.Query("type"),
		From:      from,
		To:        to,
		Limit:     c.QueryInt("limit", 0),
	})
	if err != nil {
		return err
	}

	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToResponse(tx))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"transactions": out})
}

// parseTime accepts RFC 3339 timestamps or plain dates. A plain date used as an
// upper bound covers the whole day.
func parseTime(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, apperror.Validation("invalid date %q", raw)
	}
	if endOfDay {
		d = d.Add(24*time.Hour - time.Nanosecond)
	}
	return d.UTC(), nil
}
