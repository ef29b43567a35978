package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/walletsim/walletsim/internal/apperror"
	"github.com/walletsim/walletsim/internal/money"
)

func deposit(accountID string, at time.Time) Transaction {
	amt := money.MustParse("1", "CLP")
	tx := NewDeposit(amt, accountID, "Deposit", amt, amt)
	tx.createdAt = at
	return tx
}

func TestInMemory_SaveAndFind(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	tx := deposit("acc-a", time.Now())
	if _, err := repo.Save(ctx, tx); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.FindByID(ctx, tx.ID())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID() != tx.ID() {
		t.Fatalf("expected %s, got %s", tx.ID(), got.ID())
	}

	_, err = repo.FindByID(ctx, "missing")
	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) || nf.Key != "missing" {
		t.Fatalf("expected not found with key, got %v", err)
	}
}

func TestInMemory_ListByAccountNewestFirst(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	old := deposit("acc-a", base)
	mid := deposit("acc-a", base.Add(time.Hour))
	sameTimeFirst := deposit("acc-a", base.Add(2*time.Hour))
	sameTimeSecond := deposit("acc-a", base.Add(2*time.Hour))
	other := deposit("acc-b", base.Add(3*time.Hour))

	for _, tx := range []Transaction{mid, old, sameTimeFirst, sameTimeSecond, other} {
		if _, err := repo.Save(ctx, tx); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := repo.ListByAccount(ctx, "acc-a", Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{sameTimeSecond.ID(), sameTimeFirst.ID(), mid.ID(), old.ID()}
	if len(got) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID() != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], got[i].ID())
		}
	}

	limited, _ := repo.ListByAccount(ctx, "acc-a", Filter{Limit: 2})
	if len(limited) != 2 || limited[0].ID() != sameTimeSecond.ID() {
		t.Fatalf("limit must keep the newest records, got %d", len(limited))
	}
}

func TestInMemory_FilterByTypeAndDates(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	amt := money.MustParse("5", "CLP")

	for day := 0; day < 5; day++ {
		tx := deposit("acc-a", base.AddDate(0, 0, day))
		repo.Save(ctx, tx)
	}
	sent := NewTransferSent(amt, "acc-a", "acc-b", "Transfer", amt, amt)
	sent.createdAt = base.AddDate(0, 0, 2)
	repo.Save(ctx, sent)

	kind := TypeDeposit
	got, _ := repo.ListByAccount(ctx, "acc-a", Filter{
		Type: &kind,
		From: base.AddDate(0, 0, 1),
		To:   base.AddDate(0, 0, 3),
	})
	if len(got) != 3 {
		t.Fatalf("expected 3 deposits in range (inclusive), got %d", len(got))
	}
	for _, tx := range got {
		if tx.Type() != TypeDeposit {
			t.Fatalf("unexpected type %s", tx.Type())
		}
	}

	forB, _ := repo.ListByAccount(ctx, "acc-b", Filter{})
	if len(forB) != 1 || forB[0].ID() != sent.ID() {
		t.Fatalf("counterparty must see the transfer, got %d", len(forB))
	}
}

func TestInMemory_ConcurrentSaves(t *testing.T) {
	repo := NewInMemory()
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx := deposit(fmt.Sprintf("acc-%d", i%3), time.Now())
			if _, err := repo.Save(ctx, tx); err != nil {
				t.Errorf("save %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	all, _ := repo.List(ctx)
	if len(all) != workers {
		t.Fatalf("expected %d transactions, got %d", workers, len(all))
	}
}
