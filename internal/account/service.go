package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/identity"
	"github.com/walletsim/walletsim/internal/money"
)

const maxNumberAttempts = 10

// Service opens accounts and answers balance lookups.
type Service struct {
	repo            Repository
	users           identity.Repository
	defaultCurrency string
}

// NewService builds an account service. Nil repositories panic. An empty
// defaultCurrency falls back to money.DefaultCurrency.
func NewService(repo Repository, users identity.Repository, defaultCurrency string) *Service {
	if repo == nil {
		panic("account: repository is required")
	}
	if users == nil {
		panic("account: user repository is required")
	}
	if defaultCurrency == "" {
		defaultCurrency = money.DefaultCurrency
	}
	return &Service{repo: repo, users: users, defaultCurrency: defaultCurrency}
}

// CreateInput captures data required to open an account.
type CreateInput struct {
	UserID   string
	Currency string
}

// Create opens the first and only account of a user.
func (s *Service) Create(ctx context.Context, input CreateInput) (Account, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return Account{}, apperror.Validation("user id is required")
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return Account{}, err
	}

	owned, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Account{}, err
	}
	if len(owned) > 0 {
		return Account{}, apperror.InvalidOperation("user %s already has an account", userID)
	}

	currency := input.Currency
	if strings.TrimSpace(currency) == "" {
		currency = s.defaultCurrency
	}
	acct, err := NewInCurrency(userID, currency)
	if err != nil {
		return Account{}, err
	}

	for attempt := 0; ; attempt++ {
		taken, err := s.repo.ExistsNumber(ctx, acct.Number())
		if err != nil {
			return Account{}, err
		}
		if !taken {
			break
		}
		if attempt == maxNumberAttempts {
			return Account{}, fmt.Errorf("could not allocate a free account number after %d attempts", maxNumberAttempts)
		}
		acct.renumber()
	}

	return s.repo.Save(ctx, acct)
}

// Get returns the account with the given id.
func (s *Service) Get(ctx context.Context, id string) (Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Account{}, apperror.Validation("account id is required")
	}
	return s.repo.FindByID(ctx, id)
}

// GetByNumber returns the account with the given account number.
func (s *Service) GetByNumber(ctx context.Context, number string) (Account, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return Account{}, apperror.Validation("account number is required")
	}
	return s.repo.FindByNumber(ctx, number)
}

// ListByUser returns the accounts owned by an existing user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Account, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperror.Validation("user id is required")
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}
