package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/walletsim/walletsim/internal/apperror"
)

type storedTransaction struct {
	tx  Transaction
	seq uint64
}

type inMemoryRepository struct {
	mu      sync.RWMutex
	seq     uint64
	storage map[string]storedTransaction
}

// NewInMemory creates a concurrency-safe in-memory transaction store.
func NewInMemory() Repository {
	return &inMemoryRepository{storage: make(map[string]storedTransaction)}
}

func (r *inMemoryRepository) Save(_ context.Context, tx Transaction) (Transaction, error) {
	if tx.ID() == "" {
		return Transaction{}, apperror.Validation("transaction id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	seq := r.storage[tx.ID()].seq
	if seq == 0 {
		r.seq++
		seq = r.seq
	}
	r.storage[tx.ID()] = storedTransaction{tx: tx, seq: seq}
	return tx, nil
}

func (r *inMemoryRepository) FindByID(_ context.Context, id string) (Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.storage[id]
	if !ok {
		return Transaction{}, apperror.NotFound("transaction", id)
	}
	return stored.tx, nil
}

func (r *inMemoryRepository) ListByAccount(_ context.Context, accountID string, filter Filter) ([]Transaction, error) {
	out := r.collect(func(tx Transaction) bool {
		return tx.Involves(accountID) && filter.Matches(tx)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *inMemoryRepository) List(_ context.Context) ([]Transaction, error) {
	return r.collect(func(Transaction) bool { return true }), nil
}

// collect returns matching transactions newest first.
func (r *inMemoryRepository) collect(keep func(Transaction) bool) []Transaction {
	r.mu.RLock()
	matched := make([]storedTransaction, 0)
	for _, stored := range r.storage {
		if keep(stored.tx) {
			matched = append(matched, stored)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.tx.CreatedAt().Equal(b.tx.CreatedAt()) {
			return a.tx.CreatedAt().After(b.tx.CreatedAt())
		}
		return a.seq > b.seq
	})

	out := make([]Transaction, len(matched))
	for i, stored := range matched {
		out[i] = stored.tx
	}
	return out
}
