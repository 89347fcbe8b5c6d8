package httpview

import (
	"time"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
)

// AccountView is the read-only JSON projection of an account. Balances are
// serialised as strings to keep decimal precision out of float hands.
type AccountView struct {
	Number           string `json:"accountNumber"`
	Owner            string `json:"owner"`
	Kind             string `json:"kind"`
	Balance          string `json:"balance"`
	OverdraftLimit   string `json:"overdraftLimit,omitempty"`
	MonthlyYieldRate string `json:"monthlyYieldRate,omitempty"`
}

// TransactionView is the read-only JSON projection of a transaction.
type TransactionView struct {
	ID          uint64    `json:"id"`
	RefID       string    `json:"refId"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Source      string    `json:"sourceAccount"`
	Destination string    `json:"destinationAccount,omitempty"`
	CreatedAt   time.Time `json:"createdTimestamp"`
}

func newAccountView(account domain.Account) AccountView {
	view := AccountView{
		Number:  account.Number(),
		Owner:   account.Owner().Name,
		Kind:    account.Kind().String(),
		Balance: account.Balance().String(),
	}
	switch a := account.(type) {
	case *domain.Checking:
		view.OverdraftLimit = a.OverdraftLimit().String()
	case *domain.Savings:
		view.MonthlyYieldRate = a.MonthlyYieldRate().String()
	}
	return view
}

func newTransactionView(tran domain.Transaction) TransactionView {
	return TransactionView{
		ID:          tran.ID,
		RefID:       tran.RefID.String(),
		Kind:        tran.Type.String(),
		Amount:      tran.Amount.String(),
		Source:      tran.From,
		Destination: tran.To,
		CreatedAt:   tran.CreatedAt,
	}
}
