package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
)

// OperationService 是核心業務邏輯層: the sole entry point for mutating
// operations. It couples repository lookup, account-level rule enforcement
// and transaction logging into one call.
//
// A single mutex guards repository, log and sequence counter as one critical
// section per operation, so concurrent callers see each operation as atomic.
type OperationService struct {
	accounts AccountRepository
	log      TransactionLog
	clock    Clock
	logger   zerolog.Logger

	mu sync.Mutex
	// seq: 交易順序號, 從 1 開始, 只增不減, 不跨重啟保留
	seq uint64
}

// NewOperationService wires the service with its collaborators. All of them
// are explicit: no collaborator is constructed implicitly inside the service.
func NewOperationService(accounts AccountRepository, log TransactionLog, clock Clock, logger zerolog.Logger) *OperationService {
	return &OperationService{
		accounts: accounts,
		log:      log,
		clock:    clock,
		logger:   logger,
	}
}

// Deposit 存款: looks the account up, applies the deposit rule, then records
// the transaction. Any failure aborts before the log is touched.
func (s *OperationService) Deposit(ctx context.Context, number string, amount decimal.Decimal) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := account.Deposit(amount); err != nil {
		s.logger.Debug().Err(err).Str("account", number).Str("amount", amount.String()).Msg("deposit rejected")
		return domain.Transaction{}, err
	}

	tran := s.record(ctx, domain.TransactionTypeDeposit, amount, number, "")
	s.logger.Info().Uint64("tx", tran.ID).Str("account", number).Str("amount", amount.String()).Msg("deposit applied")
	return tran, nil
}

// Withdraw 提款: ErrInsufficientFunds and ErrInvalidAmount propagate from the
// account; nothing is logged on failure.
func (s *OperationService) Withdraw(ctx context.Context, number string, amount decimal.Decimal) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := account.Withdraw(amount); err != nil {
		s.logger.Debug().Err(err).Str("account", number).Str("amount", amount.String()).Msg("withdraw rejected")
		return domain.Transaction{}, err
	}

	tran := s.record(ctx, domain.TransactionTypeWithdraw, amount, number, "")
	s.logger.Info().Uint64("tx", tran.ID).Str("account", number).Str("amount", amount.String()).Msg("withdraw applied")
	return tran, nil
}

// Transfer 轉帳: both accounts are resolved before anything moves, so a
// missing target never leaves a partial debit.
func (s *OperationService) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.accounts.Get(ctx, fromNumber)
	if err != nil {
		return domain.Transaction{}, err
	}
	to, err := s.accounts.Get(ctx, toNumber)
	if err != nil {
		return domain.Transaction{}, err
	}
	if err := from.TransferTo(to, amount); err != nil {
		s.logger.Debug().Err(err).Str("from", fromNumber).Str("to", toNumber).Str("amount", amount.String()).Msg("transfer rejected")
		return domain.Transaction{}, err
	}

	tran := s.record(ctx, domain.TransactionTypeTransfer, amount, fromNumber, toNumber)
	s.logger.Info().Uint64("tx", tran.ID).Str("from", fromNumber).Str("to", toNumber).Str("amount", amount.String()).Msg("transfer applied")
	return tran, nil
}

// ApplyYield 套用儲蓄帳戶月利率 (月數 < 1 不動作). Yield application is a
// balance adjustment, not one of the three operations, so it is never logged
// as a transaction.
func (s *OperationService) ApplyYield(ctx context.Context, number string, months int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.Get(ctx, number)
	if err != nil {
		return err
	}
	savings, ok := account.(*domain.Savings)
	if !ok {
		return domain.ErrNotSavings
	}

	savings.ApplyYield(months)
	s.logger.Info().Str("account", number).Int("months", months).Str("balance", savings.Balance().String()).Msg("yield applied")
	return nil
}

// History 回傳完整交易日誌 (oldest first) — a pass-through of the log.
func (s *OperationService) History(ctx context.Context) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.All(ctx)
}

// record assigns the next sequence id and appends the transaction. Callers
// hold s.mu and have already applied the account mutation successfully.
func (s *OperationService) record(ctx context.Context, kind domain.TransactionType, amount decimal.Decimal, from, to string) domain.Transaction {
	s.seq++
	tran := domain.Transaction{
		ID:        s.seq,
		RefID:     uuid.New(),
		From:      from,
		To:        to,
		Amount:    amount,
		CreatedAt: s.clock.Now(),
		Type:      kind,
	}
	s.log.Append(ctx, tran)
	return tran
}
