package account

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/money"
)

// Account holds a money balance for exactly one user. The owner, id, number and
// balance currency are fixed at creation.
type Account struct {
	id        string
	number    string
	userID    string
	balance   money.Money
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// New opens an account in money.DefaultCurrency with a zero balance.
func New(userID string) Account {
	acct, _ := NewInCurrency(userID, money.DefaultCurrency)
	return acct
}

// NewInCurrency opens an account whose balance is held in currency.
func NewInCurrency(userID, currency string) (Account, error) {
	zero, err := money.ZeroOf(currency)
	if err != nil {
		return Account{}, err
	}
	now := time.Now().UTC()
	return Account{
		id:        uuid.NewString(),
		number:    generateNumber(),
		userID:    userID,
		balance:   zero,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// generateNumber returns a 10 digit account number starting with 01.
func generateNumber() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(100_000_000))
	return fmt.Sprintf("01%08d", n.Int64())
}

func (a Account) ID() string           { return a.id }
func (a Account) Number() string       { return a.number }
func (a Account) UserID() string       { return a.userID }
func (a Account) Balance() money.Money { return a.balance }
func (a Account) Currency() string     { return a.balance.Currency() }
func (a Account) Active() bool         { return a.active }
func (a Account) CreatedAt() time.Time { return a.createdAt }
func (a Account) UpdatedAt() time.Time { return a.updatedAt }

// Deposit adds a positive amount in the account currency.
func (a *Account) Deposit(amount money.Money) error {
	if err := a.checkMovement(amount); err != nil {
		return err
	}
	next, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = next
	a.updatedAt = time.Now().UTC()
	return nil
}

// Withdraw removes a positive amount. The balance is left untouched when it would go negative.
func (a *Account) Withdraw(amount money.Money) error {
	if err := a.checkMovement(amount); err != nil {
		return err
	}
	next, err := a.balance.Sub(amount)
	if err != nil {
		return err
	}
	if next.IsNegative() {
		return fmt.Errorf("%w: balance %s, requested %s", apperror.ErrInsufficientFunds, a.balance, amount)
	}
	a.balance = next
	a.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate closes the account for new movements.
func (a *Account) Deactivate() {
	a.active = false
	a.updatedAt = time.Now().UTC()
}

func (a *Account) checkMovement(amount money.Money) error {
	if !amount.IsPositive() {
		return apperror.Validation("amount must be positive, got %s", amount.StringFixed())
	}
	if !a.active {
		return apperror.InvalidOperation("account %s is inactive", a.number)
	}
	return nil
}

func (a *Account) renumber() {
	a.number = generateNumber()
}

// Snapshot is the stored form of an Account.
type Snapshot struct {
	ID        string
	Number    string
	UserID    string
	Balance   money.Money
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot exports the account for storage.
func (a Account) Snapshot() Snapshot {
	return Snapshot{
		ID:        a.id,
		Number:    a.number,
		UserID:    a.userID,
		Balance:   a.balance,
		Active:    a.active,
		CreatedAt: a.createdAt,
		UpdatedAt: a.updatedAt,
	}
}

// Restore rebuilds an Account from storage without generating anything.
func Restore(s Snapshot) Account {
	return Account{
		id:        s.ID,
		number:    s.Number,
		userID:    s.UserID,
		balance:   s.Balance,
		active:    s.Active,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}
