package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
	"github.com/JoeShih716/go-mini-bank/internal/app/core/usecase"
)

// AccountRepository 是一個使用 RWMutex 保護的 in-memory 帳戶儲存庫.
//
// 結構:
//
//	byNumber: 帳號 → Account
//	order: 帳號插入順序, 讓 All 的回傳順序可預期
type AccountRepository struct {
	mu       sync.RWMutex
	byNumber map[string]domain.Account
	order    []string
}

// NewAccountRepository 建立空的帳戶儲存庫
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		byNumber: make(map[string]domain.Account),
	}
}

// Add 新增帳戶. An existing number is silently overwritten (replace
// semantics) and keeps its original position in the insertion order.
func (r *AccountRepository) Add(ctx context.Context, account domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number := account.Number()
	if _, ok := r.byNumber[number]; !ok {
		r.order = append(r.order, number)
	}
	r.byNumber[number] = account
}

// Remove 移除帳戶; 不存在時不動作
func (r *AccountRepository) Remove(ctx context.Context, number string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byNumber[number]; !ok {
		return
	}
	delete(r.byNumber, number)
	for i, n := range r.order {
		if n == number {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get 取得帳戶. The stored account itself is returned; mutations through it
// are visible to subsequent Get calls on the same number.
func (r *AccountRepository) Get(ctx context.Context, number string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byNumber[number]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// All 回傳所有帳戶的快照 (插入順序)
func (r *AccountRepository) All(ctx context.Context) []domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.order))
	for _, number := range r.order {
		out = append(out, r.byNumber[number])
	}
	return out
}

var _ usecase.AccountRepository = (*AccountRepository)(nil)
