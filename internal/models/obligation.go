package models

import (
	"github.com/shopspring/decimal"
)

// Obligation is the persistence representation of a borrowing/lending record.
// PaymentTransactionIDs is stored comma-joined in a single column, preserving
// payment order.
type Obligation struct {
	ObligationID          string          `db:"obligation_id"`
	OwnerID               string          `db:"owner_id"`
	Type                  string          `db:"type"`
	TransactionID         string          `db:"transaction_id"`
	EntityName            string          `db:"entity_name"`
	CurrencyCode          string          `db:"currency_code"`
	OriginalAmount        decimal.Decimal `db:"original_amount"`
	PaidAmount            decimal.Decimal `db:"paid_amount"`
	RemainingAmount       decimal.Decimal `db:"remaining_amount"`
	Status                string          `db:"status"`
	PaymentTransactionIDs string          `db:"payment_transaction_ids"`
	Notes                 string          `db:"notes"`
	AuditFields
}
