package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Jajanan-pasar/web/internal/models"
)

var (
	ErrTransactionFailed  = errors.New("transaction failed")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// TransactionFilter narrows wallet-transaction queries. Each field is
// independently optional; set fields are AND-combined. The date range only
// applies when both ends are present, matching the report contract.
type TransactionFilter struct {
	From            *time.Time
	To              *time.Time
	TransactionType string
	CustomerID      uint
}

// TransactionTotals holds the aggregate credit and debit sums over a filter.
type TransactionTotals struct {
	TotalCredit float64 `json:"total_credit"`
	TotalDebit  float64 `json:"total_debit"`
}

// WalletTransactionRepository defines wallet-ledger database operations.
// Rows are insert-only; there is no update or delete path.
type WalletTransactionRepository interface {
	// Create inserts a wallet transaction row.
	Create(tx *models.WalletTransaction) error

	// Totals computes credit/debit sums across all rows matching the filter.
	Totals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// List returns matching rows most-recent-first plus the unpaginated count.
	List(ctx context.Context, filter TransactionFilter, limit, offset int) ([]models.WalletTransaction, int64, error)

	// GetUserForUpdate loads a customer row under a row lock so the balance
	// mutation and the ledger insert commit as one unit.
	GetUserForUpdate(id uint) (*models.User, error)

	// UpdateUserBalance persists a customer's new wallet balance.
	UpdateUserBalance(user *models.User) error

	// ExecuteInTransaction runs fn with a repository bound to a single
	// database transaction.
	ExecuteInTransaction(fn func(WalletTransactionRepository) error) error
}
