package usecase

import (
	"context"
	"time"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
)

// AccountRepository 是帳戶儲存庫的介面. The in-memory adapter is the only
// implementation shipped; anything that satisfies this port can be swapped in.
type AccountRepository interface {
	// Add inserts the account, silently overwriting any account with the
	// same number (replace semantics).
	Add(ctx context.Context, account domain.Account)
	// Remove deletes the account; removing an unknown number is a no-op.
	Remove(ctx context.Context, number string)
	// Get 取得帳戶. Returns the stored account itself, so mutations through
	// it are visible to later Get calls.
	Get(ctx context.Context, number string) (domain.Account, error)
	// All returns a snapshot of every account in insertion order.
	All(ctx context.Context) []domain.Account
}

// TransactionLog 是交易日誌的介面: append-only, oldest first.
type TransactionLog interface {
	Append(ctx context.Context, tran domain.Transaction)
	All(ctx context.Context) []domain.Transaction
}

// Clock supplies the current timestamp so the operation service's time
// source is substitutable in tests.
type Clock interface {
	Now() time.Time
}
