package account

import (
	"context"
	"sort"
	"sync"

	"github.com/walletsim/walletsim/internal/apperror"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Account
}

// NewMemoryRepository constructs an in-memory account store keyed by account id.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Account)}
}

func (r *memoryRepository) Save(_ context.Context, account Account) (Account, error) {
	if account.ID() == "" {
		return Account{}, apperror.Validation("account id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[account.ID()] = account
	return account, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.storage[id]
	if !ok {
		return Account{}, apperror.NotFound("account", id)
	}
	return account, nil
}

func (r *memoryRepository) FindByNumber(_ context.Context, number string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.storage {
		if account.Number() == number {
			return account, nil
		}
	}
	return Account{}, apperror.NotFound("account", number)
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Account, error) {
	return r.collect(func(a Account) bool { return a.UserID() == userID }), nil
}

func (r *memoryRepository) ListActiveByUser(_ context.Context, userID string) ([]Account, error) {
	return r.collect(func(a Account) bool { return a.UserID() == userID && a.Active() }), nil
}

func (r *memoryRepository) List(_ context.Context) ([]Account, error) {
	return r.collect(func(Account) bool { return true }), nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[id]; !ok {
		return false, nil
	}
	delete(r.storage, id)
	return true, nil
}

func (r *memoryRepository) ExistsNumber(_ context.Context, number string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.storage {
		if account.Number() == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) collect(keep func(Account) bool) []Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Account, 0)
	for _, account := range r.storage {
		if keep(account) {
			out = append(out, account)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].ID() < out[j].ID()
		}
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out
}
