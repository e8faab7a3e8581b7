package repositories

import (
	"context"
	"time"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
)

// ListTransactionsFilter narrows a transaction listing. Nil fields are ignored.
//
// Since switches the query into incremental-sync mode: the result is the union
// of live rows touched at/after the cursor and soft-deleted rows whose update
// is at/after the cursor. Without Since, soft-deleted rows are always excluded.
type ListTransactionsFilter struct {
	AccountID  *string
	CategoryID *string
	Status     *domain.TransactionStatus
	Type       *domain.TransactionType
	DateFrom   *time.Time
	DateTo     *time.Time // Exclusive
	Since      *time.Time
	Limit      int // Capped at the store's per-call maximum
	Offset     int
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction owned by ownerID, deleted or not.
	FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves one page of transactions matching the filter,
	// ordered by date descending then creation time descending.
	ListTransactions(ctx context.Context, ownerID string, filter ListTransactionsFilter) ([]domain.Transaction, error)

	// FindTransferClosure expands the given ids to the full set of rows that
	// must be deleted together: every row sharing a transfer_id with any of
	// them plus rows reachable over linked_transaction_id in either direction.
	FindTransferClosure(ctx context.Context, ownerID string, transactionIDs []string) ([]string, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// CreateTransactionValidated performs account/category/currency validation
	// and the insert as one indivisible store-side operation.
	CreateTransactionValidated(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// SaveTransaction inserts a pre-validated transaction row.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransfer inserts both legs of a transfer within one database transaction.
	SaveTransfer(ctx context.Context, out domain.Transaction, in domain.Transaction) error

	// SaveTransactions bulk-inserts pre-validated rows within one database transaction.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error

	// UpdateTransaction overwrites a transaction row, enforcing
	// exactly-one-row semantics.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// SoftDeleteTransactions marks every given row deleted in a single
	// set-based update and returns the ids actually marked.
	SoftDeleteTransactions(ctx context.Context, ownerID string, transactionIDs []string, deletedAt time.Time) ([]string, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
