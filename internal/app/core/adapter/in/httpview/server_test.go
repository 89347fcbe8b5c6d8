package httpview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
)

// ---- stub sources ----

type stubAccounts struct {
	accounts []domain.Account
}

func (s *stubAccounts) All(ctx context.Context) []domain.Account { return s.accounts }

type stubHistory struct {
	trans []domain.Transaction
}

func (s *stubHistory) History(ctx context.Context) []domain.Transaction { return s.trans }

func newTestRouter(accounts []domain.Account, trans []domain.Transaction) *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := NewServer(&stubAccounts{accounts: accounts}, &stubHistory{trans: trans}, zerolog.Nop())
	return srv.Router()
}

func doGet(t *testing.T, router *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListAccounts(t *testing.T) {
	owner := domain.Client{Name: "Alice Chen"}
	accounts := []domain.Account{
		domain.NewChecking("CHK-1", owner, decimal.NewFromInt(50), decimal.NewFromInt(500)),
		domain.NewSavings("SAV-1", owner, decimal.NewFromInt(1000), decimal.RequireFromString("0.006")),
	}
	router := newTestRouter(accounts, nil)

	w := doGet(t, router, "/v1/accounts")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want=200", w.Code)
	}

	var resp struct {
		Accounts []AccountView `json:"accounts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Accounts) != 2 {
		t.Fatalf("accounts len=%d want=2", len(resp.Accounts))
	}
	chk := resp.Accounts[0]
	if chk.Number != "CHK-1" || chk.Kind != "checking" || chk.Balance != "50" || chk.OverdraftLimit != "500" {
		t.Fatalf("unexpected checking view: %+v", chk)
	}
	sav := resp.Accounts[1]
	if sav.Kind != "savings" || sav.MonthlyYieldRate != "0.006" || sav.OverdraftLimit != "" {
		t.Fatalf("unexpected savings view: %+v", sav)
	}
}

func TestListTransactions(t *testing.T) {
	trans := []domain.Transaction{
		{
			ID:        1,
			RefID:     uuid.New(),
			From:      "SAV-1",
			To:        "CHK-1",
			Amount:    decimal.NewFromInt(200),
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Type:      domain.TransactionTypeTransfer,
		},
		{
			ID:     2,
			RefID:  uuid.New(),
			From:   "CHK-1",
			Amount: decimal.NewFromInt(25),
			Type:   domain.TransactionTypeWithdraw,
		},
	}
	router := newTestRouter(nil, trans)

	w := doGet(t, router, "/v1/transactions")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want=200", w.Code)
	}

	var resp struct {
		Transactions []TransactionView `json:"transactions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Transactions) != 2 {
		t.Fatalf("transactions len=%d want=2", len(resp.Transactions))
	}
	first := resp.Transactions[0]
	if first.ID != 1 || first.Kind != "transfer" || first.Amount != "200" || first.Destination != "CHK-1" {
		t.Fatalf("unexpected transfer view: %+v", first)
	}
	second := resp.Transactions[1]
	if second.Kind != "withdraw" || second.Destination != "" {
		t.Fatalf("unexpected withdraw view: %+v", second)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(nil, nil)
	w := doGet(t, router, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want=200", w.Code)
	}
}
