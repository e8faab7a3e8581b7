package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence representation of a ledger transaction row.
// Nullable columns use pointers; deleted_at doubles as the soft-delete marker.
type Transaction struct {
	TransactionID       string          `db:"transaction_id"`
	OwnerID             string          `db:"owner_id"`
	AccountID           string          `db:"account_id"`
	CategoryID          *string         `db:"category_id"`
	Date                time.Time       `db:"date"`
	Amount              decimal.Decimal `db:"amount"`
	CurrencyCode        string          `db:"currency_code"`
	Description         string          `db:"description"`
	Type                string          `db:"type"`
	Status              string          `db:"status"`
	TransferID          *string         `db:"transfer_id"`
	LinkedTransactionID *string         `db:"linked_transaction_id"`
	DeletedAt           *time.Time      `db:"deleted_at"`
	AuditFields
}
