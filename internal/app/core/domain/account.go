package domain

import "github.com/shopspring/decimal"

// AccountKind 帳戶類型
type AccountKind uint8

const (
	// 支票帳戶 (可透支)
	AccountKindChecking AccountKind = 1
	// 儲蓄帳戶 (有月利率)
	AccountKindSavings AccountKind = 2
)

func (k AccountKind) String() string {
	switch k {
	case AccountKindChecking:
		return "checking"
	case AccountKindSavings:
		return "savings"
	default:
		return "unknown"
	}
}

// Account is the common capability set shared by every account variant.
// Balance-mutation invariants live behind these methods; callers never touch
// the balance directly.
type Account interface {
	Number() string
	Owner() Client
	Kind() AccountKind
	Balance() decimal.Decimal

	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	TransferTo(target Account, amount decimal.Decimal) error
}

// account 持有所有帳戶變體共用的狀態
type account struct {
	number  string
	owner   Client
	balance decimal.Decimal
}

// newAccount clamps a negative initial balance to zero; an account never
// starts below its own invariant.
func newAccount(number string, owner Client, initial decimal.Decimal) account {
	if initial.IsNegative() {
		initial = decimal.Zero
	}
	return account{number: number, owner: owner, balance: initial}
}

func (a *account) Number() string           { return a.number }
func (a *account) Owner() Client            { return a.owner }
func (a *account) Balance() decimal.Decimal { return a.balance }

// Deposit 存款
func (a *account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// withdraw debits the account. headroom is the extra negative room the
// variant grants on top of the balance (zero for savings, the overdraft
// limit for checking).
func (a *account) withdraw(amount, headroom decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	if amount.GreaterThan(a.balance.Add(headroom)) {
		return ErrInsufficientFunds
	}

	a.balance = a.balance.Sub(amount)
	return nil
}

// transfer moves amount from src to dst. The debit is validated first, so a
// failed withdraw never leaves a partial credit behind.
func transfer(src, dst Account, amount decimal.Decimal) error {
	if src.Number() == dst.Number() {
		return ErrSameAccount
	}

	if err := src.Withdraw(amount); err != nil {
		return err
	}
	return dst.Deposit(amount)
}

// Checking 支票帳戶: withdrawals may draw past zero up to the overdraft limit.
type Checking struct {
	account
	overdraftLimit decimal.Decimal
}

// NewChecking 建立支票帳戶. A negative overdraft limit is treated as zero.
func NewChecking(number string, owner Client, initial, overdraftLimit decimal.Decimal) *Checking {
	if overdraftLimit.IsNegative() {
		overdraftLimit = decimal.Zero
	}
	return &Checking{
		account:        newAccount(number, owner, initial),
		overdraftLimit: overdraftLimit,
	}
}

func (c *Checking) Kind() AccountKind { return AccountKindChecking }

// OverdraftLimit 透支額度
func (c *Checking) OverdraftLimit() decimal.Decimal { return c.overdraftLimit }

// Withdraw 提款: available funds are widened by the overdraft limit, so the
// stored balance may go negative but never below -limit.
func (c *Checking) Withdraw(amount decimal.Decimal) error {
	return c.withdraw(amount, c.overdraftLimit)
}

// TransferTo 轉帳
func (c *Checking) TransferTo(target Account, amount decimal.Decimal) error {
	return transfer(c, target, amount)
}

// Savings 儲蓄帳戶: balance stays non-negative and accrues a monthly yield.
type Savings struct {
	account
	monthlyYieldRate decimal.Decimal
}

// NewSavings 建立儲蓄帳戶. A negative yield rate is treated as zero.
func NewSavings(number string, owner Client, initial, monthlyYieldRate decimal.Decimal) *Savings {
	if monthlyYieldRate.IsNegative() {
		monthlyYieldRate = decimal.Zero
	}
	return &Savings{
		account:          newAccount(number, owner, initial),
		monthlyYieldRate: monthlyYieldRate,
	}
}

func (s *Savings) Kind() AccountKind { return AccountKindSavings }

// MonthlyYieldRate 月利率
func (s *Savings) MonthlyYieldRate() decimal.Decimal { return s.monthlyYieldRate }

// Withdraw 提款: no overdraft, balance must cover the full amount.
func (s *Savings) Withdraw(amount decimal.Decimal) error {
	return s.withdraw(amount, decimal.Zero)
}

// TransferTo 轉帳
func (s *Savings) TransferTo(target Account, amount decimal.Decimal) error {
	return transfer(s, target, amount)
}

// ApplyYield compounds the monthly rate over the given number of months:
// balance *= (1 + rate)^months. Fewer than one month is a no-op, not an error.
func (s *Savings) ApplyYield(months int) {
	if months < 1 {
		return
	}
	factor := decimal.NewFromInt(1).Add(s.monthlyYieldRate).Pow(decimal.NewFromInt(int64(months)))
	s.balance = s.balance.Mul(factor)
}

var (
	_ Account = (*Checking)(nil)
	_ Account = (*Savings)(nil)
)
