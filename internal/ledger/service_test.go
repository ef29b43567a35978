package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/walletsim/walletsim/internal/account"
	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/money"
)

func TestHistory(t *testing.T) {
	ctx := context.Background()
	accounts := account.NewMemoryRepository()
	repo := NewInMemory()
	svc := NewService(repo, accounts)

	acct, err := accounts.Save(ctx, account.New("user-1"))
	if err != nil {
		t.Fatalf("save account: %v", err)
	}
	amt := money.MustParse("10", "CLP")
	repo.Save(ctx, NewDeposit(amt, acct.ID(), "Deposit", money.Zero, amt))
	repo.Save(ctx, NewTransferReceived(amt, acct.ID(), "other", "Transfer", amt, money.MustParse("20", "CLP")))
	repo.Save(ctx, NewDeposit(amt, "other", "Deposit", money.Zero, amt))

	all, err := svc.History(ctx, HistoryInput{AccountID: acct.ID()})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(all))
	}

	received, err := svc.History(ctx, HistoryInput{AccountID: acct.ID(), Type: "transfer_received"})
	if err != nil {
		t.Fatalf("history by type: %v", err)
	}
	if len(received) != 1 || received[0].Type() != TypeTransferReceived {
		t.Fatalf("expected one received transfer, got %d", len(received))
	}
}

func TestHistoryErrors(t *testing.T) {
	ctx := context.Background()
	accounts := account.NewMemoryRepository()
	svc := NewService(NewInMemory(), accounts)
	acct, _ := accounts.Save(ctx, account.New("user-1"))

	cases := []struct {
		name  string
		input HistoryInput
		want  error
	}{
		{"empty id", HistoryInput{AccountID: " "}, apperror.ErrValidation},
		{"unknown account", HistoryInput{AccountID: "ghost"}, apperror.ErrNotFound},
		{"bad type", HistoryInput{AccountID: acct.ID(), Type: "refund"}, apperror.ErrValidation},
		{"negative limit", HistoryInput{AccountID: acct.ID(), Limit: -1}, apperror.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.History(ctx, tc.input); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewServicePanicsOnNilRepository(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewService(nil, account.NewMemoryRepository())
}
