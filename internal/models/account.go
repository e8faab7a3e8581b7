package models

import (
	"github.com/shopspring/decimal"
)

// Account is the persistence representation of a ledger account.
type Account struct {
	AccountID      string          `db:"account_id"`
	OwnerID        string          `db:"owner_id"`
	Name           string          `db:"name"`
	AccountType    string          `db:"account_type"`
	CurrencyCode   string          `db:"currency_code"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Status         string          `db:"status"`
	AuditFields
}
