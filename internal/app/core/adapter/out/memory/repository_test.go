package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
)

var owner = domain.Client{Name: "Bob Lin", NationalID: "B987654321"}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRepositoryAddGetRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	repo.Add(ctx, domain.NewChecking("CHK-1", owner, d("100"), d("50")))

	account, err := repo.Get(ctx, "CHK-1")
	if err != nil {
		t.Fatal(err)
	}
	if account.Number() != "CHK-1" || !account.Balance().Equal(d("100")) {
		t.Fatalf("unexpected account: %s %s", account.Number(), account.Balance())
	}

	repo.Remove(ctx, "CHK-1")
	if _, err := repo.Get(ctx, "CHK-1"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}

	// 移除不存在的帳號不動作
	repo.Remove(ctx, "CHK-1")
	repo.Remove(ctx, "missing")
}

func TestRepositoryGetUnknown(t *testing.T) {
	repo := NewAccountRepository()
	if _, err := repo.Get(context.Background(), "unknown"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestRepositoryGetReturnsStoredReference(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	repo.Add(ctx, domain.NewSavings("SAV-1", owner, d("100"), d("0")))

	account, err := repo.Get(ctx, "SAV-1")
	if err != nil {
		t.Fatal(err)
	}
	if err := account.Deposit(d("25")); err != nil {
		t.Fatal(err)
	}

	// 透過 Get 的變更對後續 Get 可見
	again, err := repo.Get(ctx, "SAV-1")
	if err != nil {
		t.Fatal(err)
	}
	if !again.Balance().Equal(d("125")) {
		t.Fatalf("balance=%s want=125", again.Balance())
	}
}

func TestRepositoryAddOverwritesKeepingPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	repo.Add(ctx, domain.NewChecking("CHK-1", owner, d("1"), d("0")))
	repo.Add(ctx, domain.NewChecking("CHK-2", owner, d("2"), d("0")))

	// replace semantics: 同帳號覆寫, 位置不變
	repo.Add(ctx, domain.NewChecking("CHK-1", owner, d("99"), d("0")))

	all := repo.All(ctx)
	if len(all) != 2 {
		t.Fatalf("All len=%d want=2", len(all))
	}
	if all[0].Number() != "CHK-1" || !all[0].Balance().Equal(d("99")) {
		t.Fatalf("all[0]=%s %s", all[0].Number(), all[0].Balance())
	}
	if all[1].Number() != "CHK-2" {
		t.Fatalf("all[1]=%s want CHK-2", all[1].Number())
	}
}

func TestRepositoryAllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()
	numbers := []string{"C", "A", "B"}
	for _, n := range numbers {
		repo.Add(ctx, domain.NewSavings(n, owner, d("0"), d("0")))
	}

	all := repo.All(ctx)
	if len(all) != len(numbers) {
		t.Fatalf("All len=%d want=%d", len(all), len(numbers))
	}
	for i, n := range numbers {
		if all[i].Number() != n {
			t.Fatalf("all[%d]=%s want=%s", i, all[i].Number(), n)
		}
	}
}
