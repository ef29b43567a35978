package identity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered wallet holder. Fields are read through accessors so
// the id and creation time cannot change once assigned.
type User struct {
	id        string
	firstName string
	lastName  string
	email     Email
	document  Document
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewUser assigns a fresh id and marks the user active.
func NewUser(firstName, lastName string, email Email, document Document) User {
	now := time.Now().UTC()
	return User{
		id:        uuid.NewString(),
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		document:  document,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}
}

// UserSnapshot is the stored form of a User.
type UserSnapshot struct {
	ID        string
	FirstName string
	LastName  string
	Email     Email
	Document  Document
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreUser rebuilds a User from storage without touching id or timestamps.
func RestoreUser(s UserSnapshot) User {
	return User{
		id:        s.ID,
		firstName: s.FirstName,
		lastName:  s.LastName,
		email:     s.Email,
		document:  s.Document,
		active:    s.Active,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

func (u User) ID() string           { return u.id }
func (u User) FirstName() string    { return u.firstName }
func (u User) LastName() string     { return u.lastName }
func (u User) Email() Email         { return u.email }
func (u User) Document() Document   { return u.document }
func (u User) Active() bool         { return u.active }
func (u User) CreatedAt() time.Time { return u.createdAt }
func (u User) UpdatedAt() time.Time { return u.updatedAt }

// FullName joins first and last name.
func (u User) FullName() string {
	return u.firstName + " " + u.lastName
}

// Snapshot exports the user for storage.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:        u.id,
		FirstName: u.firstName,
		LastName:  u.lastName,
		Email:     u.email,
		Document:  u.document,
		Active:    u.active,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}

// Deactivate flags the user as inactive.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now().UTC()
}

// Activate flags the user as active again.
func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now().UTC()
}
