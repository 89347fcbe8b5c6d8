package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mini-bank/internal/app/core/usecase"
)

// TransactionLog 是 append-only 的 in-memory 交易日誌
type TransactionLog struct {
	mu    sync.RWMutex
	trans []domain.Transaction
}

// NewTransactionLog 建立空的交易日誌
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Append 寫入一筆交易到尾端
func (l *TransactionLog) Append(ctx context.Context, tran domain.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.trans = append(l.trans, tran)
}

// All 回傳完整日誌的拷貝 (oldest first), 呼叫端改動不影響內部狀態
func (l *TransactionLog) All(ctx context.Context) []domain.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Transaction, len(l.trans))
	copy(out, l.trans)
	return out
}

var _ usecase.TransactionLog = (*TransactionLog)(nil)
