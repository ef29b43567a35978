package identity

import (
	"context"
	"strings"

	"github.com/walletsim/walletsim/internal/apperror"
)

// Service manages user registration and lookup.
type Service struct {
	repo Repository
}

// NewService creates a new identity service. A nil repository is a wiring bug and panics.
func NewService(repo Repository) *Service {
	if repo == nil {
		panic("identity: repository is required")
	}
	return &Service{repo: repo}
}

// RegisterInput carries the data needed to create a user.
type RegisterInput struct {
	FirstName      string
	LastName       string
	Email          string
	DocumentType   string
	DocumentNumber string
}

// Register validates the input, rejects duplicate e-mails and documents, and stores a new user.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	required := []struct{ name, value string }{
		{"first name", in.FirstName},
		{"last name", in.LastName},
		{"email", in.Email},
		{"document type", in.DocumentType},
		{"document number", in.DocumentNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return User{}, apperror.Validation("%s is required", f.name)
		}
	}

	email, err := NewEmail(in.Email)
	if err != nil {
		return User{}, err
	}
	kind, err := ParseDocumentType(in.DocumentType)
	if err != nil {
		return User{}, err
	}
	doc, err := NewDocument(kind, in.DocumentNumber)
	if err != nil {
		return User{}, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, apperror.InvalidOperation("a user with email %s already exists", email)
	}
	taken, err = s.repo.ExistsByDocument(ctx, doc)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, apperror.InvalidOperation("a user with document %s already exists", doc.Number())
	}

	user := NewUser(strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName), email, doc)
	return s.repo.Save(ctx, user)
}

// FindByID returns the user with the given id.
func (s *Service) FindByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, apperror.Validation("user id is required")
	}
	return s.repo.FindByID(ctx, id)
}

// FindByEmail returns the user registered with the given e-mail.
func (s *Service) FindByEmail(ctx context.Context, rawEmail string) (User, error) {
	if strings.TrimSpace(rawEmail) == "" {
		return User{}, apperror.Validation("email is required")
	}
	email, err := NewEmail(rawEmail)
	if err != nil {
		return User{}, err
	}
	return s.repo.FindByEmail(ctx, email)
}

// List returns all users, or only active ones.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]User, error) {
	if activeOnly {
		return s.repo.ListActive(ctx)
	}
	return s.repo.List(ctx)
}
