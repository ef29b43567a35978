package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/apperror"
)

// Service answers transaction history queries.
type Service struct {
	repo     Repository
	accounts account.Repository
}

// NewService builds a history service. Nil repositories panic.
func NewService(repo Repository, accounts account.Repository) *Service {
	if repo == nil {
		panic("ledger: repository is required")
	}
	if accounts == nil {
		panic("ledger: account repository is required")
	}
	return &Service{repo: repo, accounts: accounts}
}

// HistoryInput selects the transactions of one account.
type HistoryInput struct {
	AccountID string
	// Type is optional and parsed with ParseType.
	Type  string
	From  time.Time
	To    time.Time
	Limit int
}

// History returns the transactions that reference the account as primary or
// counterparty, newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]Transaction, error) {
	accountID := strings.TrimSpace(input.AccountID)
	if accountID == "" {
		return nil, apperror.Validation("account id is required")
	}
	if input.Limit < 0 {
		return nil, apperror.Validation("limit must not be negative")
	}
	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return nil, apperror.Validation("to must not be before from")
	}

	filter := Filter{From: input.From, To: input.To, Limit: input.Limit}
	if strings.TrimSpace(input.Type) != "" {
		t, err := ParseType(input.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &t
	}

	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.repo.ListByAccount(ctx, accountID, filter)
}
