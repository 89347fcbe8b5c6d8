// Package httpview is the read-only presentation adapter: it renders
// accounts and the transaction history as JSON and never mutates anything.
// All writes stay behind the operation service's in-process API.
package httpview

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/JoeShih716/go-mini-bank/internal/app/core/domain"
)

// AccountSource defines the account reads used by the view.
type AccountSource interface {
	All(ctx context.Context) []domain.Account
}

// HistorySource defines the history reads used by the view.
type HistorySource interface {
	History(ctx context.Context) []domain.Transaction
}

// Server serves the read-only view endpoints.
type Server struct {
	accounts AccountSource
	history  HistorySource
	logger   zerolog.Logger
}

func NewServer(accounts AccountSource, history HistorySource, logger zerolog.Logger) *Server {
	return &Server{accounts: accounts, history: history, logger: logger}
}

// Router builds the gin engine with all view routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.GET("/accounts", s.listAccounts)
	v1.GET("/transactions", s.listTransactions)
	return r
}

func (s *Server) listAccounts(c *gin.Context) {
	accounts := s.accounts.All(c.Request.Context())
	views := make([]AccountView, len(accounts))
	for i, account := range accounts {
		views[i] = newAccountView(account)
	}
	c.JSON(http.StatusOK, gin.H{"accounts": views})
}

func (s *Server) listTransactions(c *gin.Context) {
	trans := s.history.History(c.Request.Context())
	views := make([]TransactionView, len(trans))
	for i, tran := range trans {
		views[i] = newTransactionView(tran)
	}
	c.JSON(http.StatusOK, gin.H{"transactions": views})
}
