// Package fixture 提供展示與測試用的種子資料.
// 這是核心之外的資料工廠, 不屬於正式契約: 正式呼叫端建立帳戶時直接操作
// repository 即可.
package fixture

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mini-bank/internal/app/core/usecase"
)

// Account numbers used by the seed data set.
const (
	CheckingNumber = "CHK-0001"
	SavingsNumber  = "SAV-0001"
)

// Seed 填入一組固定的展示帳戶, 回傳帳號 (插入順序)
func Seed(ctx context.Context, repo usecase.AccountRepository) []string {
	alice := domain.Client{
		Name:       "Alice Chen",
		NationalID: "A123456789",
		Address:    "100 Main St",
		Phone:      "0912-345-678",
	}
	bob := domain.Client{
		Name:       "Bob Lin",
		NationalID: "B987654321",
		Address:    "200 Side Rd",
		Phone:      "0987-654-321",
	}

	repo.Add(ctx, domain.NewChecking(CheckingNumber, alice,
		decimal.NewFromInt(200), decimal.NewFromInt(500)))
	repo.Add(ctx, domain.NewSavings(SavingsNumber, bob,
		decimal.NewFromInt(1000), decimal.NewFromFloat(0.006)))

	return []string{CheckingNumber, SavingsNumber}
}
