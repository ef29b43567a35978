package ledger

import (
	"errors"
	"testing"

	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/money"
)

func TestParseType(t *testing.T) {
	cases := map[string]Type{
		"DEPOSIT":            TypeDeposit,
		"withdrawal":         TypeWithdrawal,
		"transfer-sent":      TypeTransferSent,
		" Transfer Received": TypeTransferReceived,
	}
	for raw, want := range cases {
		got, err := ParseType(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", raw, want, got)
		}
	}

	if _, err := ParseType("refund"); !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !TypeTransferSent.IsTransfer() || TypeDeposit.IsTransfer() {
		t.Fatal("IsTransfer misclassifies types")
	}
}

func TestFactoriesCaptureBalances(t *testing.T) {
	amount := money.MustParse("100.00", "CLP")
	before := money.MustParse("0", "CLP")
	after := money.MustParse("100", "CLP")

	dep := NewDeposit(amount, "acc-a", "Deposit", before, after)
	if dep.Type() != TypeDeposit || dep.AccountID() != "acc-a" || dep.ID() == "" {
		t.Fatalf("unexpected deposit %+v", dep)
	}
	if dep.BalanceBefore().StringFixed() != "0.00" || dep.BalanceAfter().StringFixed() != "100.00" {
		t.Fatalf("unexpected balances %s -> %s", dep.BalanceBefore(), dep.BalanceAfter())
	}
	if _, ok := dep.Destination(); ok {
		t.Fatal("deposit must not have a destination")
	}

	wd := NewWithdrawal(amount, "acc-a", "Withdrawal", after, before)
	if wd.Type() != TypeWithdrawal {
		t.Fatalf("expected withdrawal, got %s", wd.Type())
	}
}

func TestTransferPairReferencesBothAccounts(t *testing.T) {
	amount := money.MustParse("50", "CLP")
	sent := NewTransferSent(amount, "acc-a", "acc-b", "rent", money.MustParse("200", "CLP"), money.MustParse("150", "CLP"))
	received := NewTransferReceived(amount, "acc-b", "acc-a", "rent", money.MustParse("0", "CLP"), money.MustParse("50", "CLP"))

	if sent.AccountID() != "acc-a" {
		t.Fatalf("sent side must belong to the source, got %s", sent.AccountID())
	}
	if dest, ok := sent.Destination(); !ok || dest != "acc-b" {
		t.Fatalf("sent side must point at the destination, got %q", dest)
	}
	if received.AccountID() != "acc-b" {
		t.Fatalf("received side must belong to the receiver, got %s", received.AccountID())
	}
	if origin, ok := received.Destination(); !ok || origin != "acc-a" {
		t.Fatalf("received side must point at the origin, got %q", origin)
	}

	for _, tx := range []Transaction{sent, received} {
		if !tx.Involves("acc-a") || !tx.Involves("acc-b") || tx.Involves("acc-c") || tx.Involves("") {
			t.Fatalf("Involves is wrong for %s", tx.Type())
		}
	}
}
