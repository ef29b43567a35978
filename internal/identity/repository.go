package identity

import "context"

// Repository persists users. Lookups that miss return an apperror.NotFound error.
type Repository interface {
	Save(ctx context.Context, user User) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email Email) (User, error)
	FindByDocumentNumber(ctx context.Context, number string) (User, error)
	ExistsByEmail(ctx context.Context, email Email) (bool, error)
	ExistsByDocument(ctx context.Context, document Document) (bool, error)
	List(ctx context.Context) ([]User, error)
	ListActive(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
