package services

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/pledgerhq/pledger_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction owned by the caller.
	GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves matching transactions. Without explicit
	// pagination it pages through the store transparently and returns every
	// matching row; with a Since cursor it returns the incremental-sync union.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a single transaction, then
	// runs the obligation classification hook best-effort.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// CreateTransfer atomically creates the TRANSFER_OUT/TRANSFER_IN pair.
	CreateTransfer(ctx context.Context, ownerID string, req dto.CreateTransferRequest) (*dto.TransferResult, error)

	// CreateTransactionsBatch validates every record and inserts all of them
	// or none of them.
	CreateTransactionsBatch(ctx context.Context, ownerID string, req dto.BatchCreateTransactionsRequest) ([]domain.Transaction, error)

	// UpdateTransaction applies only the fields present in the request.
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction soft-deletes the row and, for transfer legs, its full
	// partner closure. Returns every id deleted.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) ([]string, error)

	// DeleteTransactions soft-deletes up to 100 rows plus their transfer closures.
	DeleteTransactions(ctx context.Context, ownerID string, transactionIDs []string) (*dto.BulkDeleteResult, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
