package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/ledger"
	"github.com/walletsim/walletsim/internal/money"
	"github.com/walletsim/walletsim/internal/notification"
)

const defaultTransferDescription = "Transfer"

// Service moves money between two accounts of the same currency.
type Service struct {
	accounts account.Repository
	ledger   ledger.Repository
	locker   *account.Locker
	notifier notification.Notifier
}

// NewService constructs a payment service. Nil repositories panic. The notifier
// is optional and a nil locker gets a private one.
func NewService(accounts account.Repository, ledgerRepo ledger.Repository, locker *account.Locker, notifier notification.Notifier) *Service {
	if accounts == nil {
		panic("payments: account repository is required")
	}
	if ledgerRepo == nil {
		panic("payments: ledger repository is required")
	}
	if locker == nil {
		locker = account.NewLocker()
	}
	return &Service{accounts: accounts, ledger: ledgerRepo, locker: locker, notifier: notifier}
}

// TransferInput captures the data needed to move funds between accounts.
type TransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        string
	Description   string
}

// TransferResult holds both accounts after the transfer and the two records written.
type TransferResult struct {
	Source      account.Account
	Destination account.Account
	Sent        ledger.Transaction
	Received    ledger.Transaction
	CompletedAt time.Time
}

// Transfer withdraws from the source and deposits into the destination. Nothing
// is persisted until both balance changes have succeeded.
func (s *Service) Transfer(ctx context.Context, input TransferInput) (TransferResult, error) {
	fromID := strings.TrimSpace(input.FromAccountID)
	toID := strings.TrimSpace(input.ToAccountID)
	switch {
	case fromID == "":
		return TransferResult{}, apperror.Validation("source account id is required")
	case toID == "":
		return TransferResult{}, apperror.Validation("destination account id is required")
	case strings.TrimSpace(input.Amount) == "":
		return TransferResult{}, apperror.Validation("amount is required")
	case fromID == toID:
		return TransferResult{}, apperror.InvalidOperation("cannot transfer to the same account")
	}

	unlock := s.locker.Lock(fromID, toID)
	defer unlock()

	source, err := s.accounts.FindByID(ctx, fromID)
	if err != nil {
		return TransferResult{}, err
	}
	destination, err := s.accounts.FindByID(ctx, toID)
	if err != nil {
		return TransferResult{}, err
	}
	if source.Currency() != destination.Currency() {
		return TransferResult{}, fmt.Errorf("%w: %w", apperror.ErrInvalidOperation,
			apperror.CurrencyMismatch(source.Currency(), destination.Currency()))
	}

	amount, err := money.Parse(input.Amount, source.Currency())
	if err != nil {
		return TransferResult{}, err
	}

	priorSource := source.Snapshot()
	priorDestination := destination.Snapshot()

	sourceBefore := source.Balance()
	if err := source.Withdraw(amount); err != nil {
		return TransferResult{}, err
	}
	destinationBefore := destination.Balance()
	if err := destination.Deposit(amount); err != nil {
		return TransferResult{}, err
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		description = defaultTransferDescription
	}
	sent := ledger.NewTransferSent(amount, source.ID(), destination.ID(), description, sourceBefore, source.Balance())
	received := ledger.NewTransferReceived(amount, destination.ID(), source.ID(), description, destinationBefore, destination.Balance())

	if _, err := s.accounts.Save(ctx, source); err != nil {
		return TransferResult{}, err
	}
	if _, err := s.accounts.Save(ctx, destination); err != nil {
		s.rollback(ctx, priorSource)
		return TransferResult{}, fmt.Errorf("persist destination: %w", err)
	}
	if _, err := s.ledger.Save(ctx, sent); err != nil {
		s.rollback(ctx, priorSource, priorDestination)
		return TransferResult{}, fmt.Errorf("record sent transfer: %w", err)
	}
	if _, err := s.ledger.Save(ctx, received); err != nil {
		s.rollback(ctx, priorSource, priorDestination)
		return TransferResult{}, fmt.Errorf("record received transfer: %w", err)
	}

	if s.notifier != nil {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindTransferReceived,
			Destination: destination.UserID(),
			Body:        fmt.Sprintf("You received %s from account %s", amount, source.Number()),
		})
	}

	return TransferResult{
		Source:      source,
		Destination: destination,
		Sent:        sent,
		Received:    received,
		CompletedAt: time.Now().UTC(),
	}, nil
}

// rollback puts accounts back to the given snapshots. Errors are dropped since the
// caller already returns the original failure.
func (s *Service) rollback(ctx context.Context, snapshots ...account.Snapshot) {
	for _, snap := range snapshots {
		_, _ = s.accounts.Save(ctx, account.Restore(snap))
	}
}
