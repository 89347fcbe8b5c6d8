package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds 可用餘額不足 (含透支額度)
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount 來源與目標帳戶相同
	ErrSameAccount = errors.New("source and target accounts are the same")

	// ErrNotSavings 該帳戶不計息
	ErrNotSavings = errors.New("account does not accrue yield")
)
