package account

import "context"

// Repository persists accounts. Lookups that miss return an apperror.NotFound error.
type Repository interface {
	Save(ctx context.Context, account Account) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	FindByNumber(ctx context.Context, number string) (Account, error)
	ListByUser(ctx context.Context, userID string) ([]Account, error)
	ListActiveByUser(ctx context.Context, userID string) ([]Account, error)
	List(ctx context.Context) ([]Account, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExistsNumber(ctx context.Context, number string) (bool, error)
}
