package identity

import (
	"context"
	"sort"
	"sync"

	"github.com/walletsim/walletsim/internal/apperror"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepository builds an in-memory user store keyed by user id.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Save(_ context.Context, user User) (User, error) {
	if user.ID() == "" {
		return User{}, apperror.Validation("user id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID()] = user
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return User{}, apperror.NotFound("user", id)
	}
	return user, nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email Email) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email() == email {
			return user, nil
		}
	}
	return User{}, apperror.NotFound("user", email.String())
}

func (r *memoryRepository) FindByDocumentNumber(_ context.Context, number string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Document().Number() == number {
			return user, nil
		}
	}
	return User{}, apperror.NotFound("user", number)
}

func (r *memoryRepository) ExistsByEmail(_ context.Context, email Email) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email() == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) ExistsByDocument(_ context.Context, document Document) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Document().Equal(document) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryRepository) List(_ context.Context) ([]User, error) {
	return r.collect(func(User) bool { return true }), nil
}

func (r *memoryRepository) ListActive(_ context.Context) ([]User, error) {
	return r.collect(User.Active), nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

// collect returns matching users ordered by creation time.
func (r *memoryRepository) collect(keep func(User) bool) []User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]User, 0, len(r.users))
	for _, user := range r.users {
		if keep(user) {
			out = append(out, user)
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
