package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a single ledger row.
type TransactionType string

const (
	TxnIncome      TransactionType = "INCOME"
	TxnExpense     TransactionType = "EXPENSE"
	TxnTransfer    TransactionType = "TRANSFER"
	TxnTransferOut TransactionType = "TRANSFER_OUT"
	TxnTransferIn  TransactionType = "TRANSFER_IN"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TxnIncome, TxnExpense, TxnTransfer, TxnTransferOut, TxnTransferIn:
		return true
	}
	return false
}

// IsTransferLeg reports whether rows of this type form one half of a transfer
// pair. Transfer legs are the only rows allowed to omit a category.
func (t TransactionType) IsTransferLeg() bool {
	return t == TxnTransferOut || t == TxnTransferIn
}

// TransactionStatus is the clearing state of a transaction.
type TransactionStatus string

const (
	TxnPending    TransactionStatus = "PENDING"
	TxnCleared    TransactionStatus = "CLEARED"
	TxnReconciled TransactionStatus = "RECONCILED"
	TxnCancelled  TransactionStatus = "CANCELLED"
)

// IsValid reports whether s is a known transaction status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TxnPending, TxnCleared, TxnReconciled, TxnCancelled:
		return true
	}
	return false
}

// Transaction represents a single monetary movement against one account.
//
// A row with TransferID or LinkedTransactionID set always has exactly one
// partner row sharing one of those references, and the two legs are
// soft-deleted together, never independently.
type Transaction struct {
	TransactionID       string            `json:"transactionID"`
	OwnerID             string            `json:"ownerID"`
	AccountID           string            `json:"accountID"`
	CategoryID          *string           `json:"categoryID"` // Required unless the type is a transfer leg
	Date                time.Time         `json:"date"`
	Amount              decimal.Decimal   `json:"amount"` // Signed
	CurrencyCode        string            `json:"currencyCode"`
	Description         string            `json:"description"`
	Type                TransactionType   `json:"type"`
	Status              TransactionStatus `json:"status"`
	TransferID          *string           `json:"transferID"`
	LinkedTransactionID *string           `json:"linkedTransactionID"`
	DeletedAt           *time.Time        `json:"deletedAt"` // Soft delete marker
	AuditFields
}

// IsDeleted reports whether the transaction has been soft-deleted.
func (t Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}
