package funding

import (
	"context"
	"strings"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/ledger"
	"github.com/walletsim/walletsim/internal/money"
)

const (
	defaultDepositDescription    = "Deposit"
	defaultWithdrawalDescription = "Withdrawal"
)

// Service moves money into and out of single accounts and records each movement.
type Service struct {
	accounts account.Repository
	ledger   ledger.Repository
	locker   *account.Locker
}

// NewService wires the funding use cases. Nil repositories panic; a nil locker
// gets a private one.
func NewService(accounts account.Repository, ledgerRepo ledger.Repository, locker *account.Locker) *Service {
	if accounts == nil {
		panic("funding: account repository is required")
	}
	if ledgerRepo == nil {
		panic("funding: ledger repository is required")
	}
	if locker == nil {
		locker = account.NewLocker()
	}
	return &Service{accounts: accounts, ledger: ledgerRepo, locker: locker}
}

// Input captures a deposit or withdrawal request. Amount is decimal text and is
// read in the account currency.
type Input struct {
	AccountID   string
	Amount      string
	Description string
}

// Result is the account after the movement and the transaction that recorded it.
type Result struct {
	Account     account.Account
	Transaction ledger.Transaction
}

// Deposit credits an account.
func (s *Service) Deposit(ctx context.Context, input Input) (Result, error) {
	return s.apply(ctx, input, ledger.TypeDeposit)
}

// Withdraw debits an account. Insufficient funds leave the account and ledger untouched.
func (s *Service) Withdraw(ctx context.Context, input Input) (Result, error) {
	return s.apply(ctx, input, ledger.TypeWithdrawal)
}

func (s *Service) apply(ctx context.Context, input Input, kind ledger.Type) (Result, error) {
	accountID := strings.TrimSpace(input.AccountID)
	if accountID == "" {
		return Result{}, apperror.Validation("account id is required")
	}
	if strings.TrimSpace(input.Amount) == "" {
		return Result{}, apperror.Validation("amount is required")
	}

	unlock := s.locker.Lock(accountID)
	defer unlock()

	acct, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return Result{}, err
	}
	amount, err := money.Parse(input.Amount, acct.Currency())
	if err != nil {
		return Result{}, err
	}

	prior := acct.Snapshot()
	before := acct.Balance()
	description := strings.TrimSpace(input.Description)

	var tx ledger.Transaction
	switch kind {
	case ledger.TypeDeposit:
		if err := acct.Deposit(amount); err != nil {
			return Result{}, err
		}
		if description == "" {
			description = defaultDepositDescription
		}
		tx = ledger.NewDeposit(amount, acct.ID(), description, before, acct.Balance())
	case ledger.TypeWithdrawal:
		if err := acct.Withdraw(amount); err != nil {
			return Result{}, err
		}
		if description == "" {
			description = defaultWithdrawalDescription
		}
		tx = ledger.NewWithdrawal(amount, acct.ID(), description, before, acct.Balance())
	default:
		return Result{}, apperror.InvalidOperation("unsupported movement %s", kind)
	}

	saved, err := s.accounts.Save(ctx, acct)
	if err != nil {
		return Result{}, err
	}
	recorded, err := s.ledger.Save(ctx, tx)
	if err != nil {
		// keep balance and history in step
		_, _ = s.accounts.Save(ctx, account.Restore(prior))
		return Result{}, err
	}
	return Result{Account: saved, Transaction: recorded}, nil
}
