package funding

import (
	"encoding/json"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/ledger"
)

// MovementRequest is the body of deposit and withdrawal calls. Amount accepts a
// JSON number or a decimal string.
type MovementRequest struct {
	Amount      json.Number `json:"amount" validate:"required"`
	Description string      `json:"description,omitempty" validate:"max=140"`
}

// MovementResponse is returned after a successful deposit or withdrawal.
type MovementResponse struct {
	Account     account.Response           `json:"account"`
	Transaction ledger.TransactionResponse `json:"transaction"`
}

func toResponse(result Result) MovementResponse {
	return MovementResponse{
		Account:     account.ToResponse(result.Account),
		Transaction: ledger.ToResponse(result.Transaction),
	}
}
