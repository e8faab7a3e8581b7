package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account by the kind of real-world account it mirrors.
type AccountType string

const (
	AccountChecking   AccountType = "CHECKING"
	AccountSavings    AccountType = "SAVINGS"
	AccountCredit     AccountType = "CREDIT"
	AccountInvestment AccountType = "INVESTMENT"
	AccountCash       AccountType = "CASH"
	AccountBank       AccountType = "BANK"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountChecking, AccountSavings, AccountCredit, AccountInvestment, AccountCash, AccountBank:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountClosed    AccountStatus = "CLOSED"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// IsValid reports whether s is a known account status.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountActive, AccountClosed, AccountSuspended:
		return true
	}
	return false
}

// Account represents a financial account within the ledger.
// CurrencyCode and OpeningBalance become immutable once any live
// transaction references the account.
type Account struct {
	AccountID      string          `json:"accountID"`
	OwnerID        string          `json:"ownerID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Status         AccountStatus   `json:"status"`
	AuditFields
}

// AccountBalance is the result of a balance computation for one account:
// the opening balance plus the sum of all live transaction amounts.
type AccountBalance struct {
	Account Account         `json:"account"`
	Balance decimal.Decimal `json:"balance"`
	AsOf    time.Time       `json:"asOf"`
}
