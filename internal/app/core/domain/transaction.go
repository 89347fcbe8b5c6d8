package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 轉帳
	TransactionTypeTransfer TransactionType = 3
)

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	case TransactionTypeTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Transaction 交易紀錄. Immutable once appended to the log: the operation
// service builds one after the account mutation succeeds and nothing touches
// it afterwards.
type Transaction struct {
	// ID: 全局唯一的順序號 (由 operation service 分配，1, 2, 3...)
	ID uint64
	// RefID: 外部追蹤號 (UUID)
	RefID uuid.UUID
	// From, To: 帳號. To is set only for transfers.
	From string
	To   string
	// Amount: 金額 (always positive)
	Amount decimal.Decimal
	// CreatedAt: 交易時間 (taken from the injected clock)
	CreatedAt time.Time
	// Type: 交易類型
	Type TransactionType
}
