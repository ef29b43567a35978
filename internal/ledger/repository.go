package ledger

import (
	"context"
	"time"
)

// Filter narrows an account history. Zero values disable a criterion.
type Filter struct {
	Type  *Type
	From  time.Time
	To    time.Time
	Limit int
}

// Matches reports whether t passes the type and date criteria. Limit is applied by the caller.
func (f Filter) Matches(t Transaction) bool {
	if f.Type != nil && t.Type() != *f.Type {
		return false
	}
	if !f.From.IsZero() && t.CreatedAt().Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.CreatedAt().After(f.To) {
		return false
	}
	return true
}

// Repository persists transaction records.
type Repository interface {
	Save(ctx context.Context, tx Transaction) (Transaction, error)
	FindByID(ctx context.Context, id string) (Transaction, error)
	// ListByAccount returns transactions involving accountID, newest first.
	ListByAccount(ctx context.Context, accountID string, filter Filter) ([]Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
}
