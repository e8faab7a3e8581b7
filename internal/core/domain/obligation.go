package domain

import (
	"github.com/shopspring/decimal"
)

// ObligationType distinguishes money the owner borrowed from money the owner lent.
type ObligationType string

const (
	Borrowing ObligationType = "BORROWING"
	Lending   ObligationType = "LENDING"
)

// IsValid reports whether t is a known obligation type.
func (t ObligationType) IsValid() bool {
	return t == Borrowing || t == Lending
}

// ObligationStatus is the payoff state of an obligation.
// The only transitions are ACTIVE -> FULLY_PAID (automatic, on zero-out)
// and ACTIVE -> CANCELLED (explicit).
type ObligationStatus string

const (
	ObligationActive    ObligationStatus = "ACTIVE"
	ObligationFullyPaid ObligationStatus = "FULLY_PAID"
	ObligationCancelled ObligationStatus = "CANCELLED"
)

// IsValid reports whether s is a known obligation status.
func (s ObligationStatus) IsValid() bool {
	switch s {
	case ObligationActive, ObligationFullyPaid, ObligationCancelled:
		return true
	}
	return false
}

// Obligation tracks an informal debt (borrowed or lent amount) amortized by
// payment transactions.
//
// PaidAmount + RemainingAmount == OriginalAmount holds at every observable
// state; the amount fields move only through payment recording.
type Obligation struct {
	ObligationID          string           `json:"obligationID"`
	OwnerID               string           `json:"ownerID"`
	Type                  ObligationType   `json:"type"`
	TransactionID         string           `json:"transactionID"` // Originating transaction
	EntityName            string           `json:"entityName"`
	CurrencyCode          string           `json:"currencyCode"`
	OriginalAmount        decimal.Decimal  `json:"originalAmount"` // Always positive
	PaidAmount            decimal.Decimal  `json:"paidAmount"`
	RemainingAmount       decimal.Decimal  `json:"remainingAmount"`
	Status                ObligationStatus `json:"status"`
	PaymentTransactionIDs []string         `json:"paymentTransactionIDs"` // Ordered payment history
	Notes                 string           `json:"notes"`
	AuditFields
}

// ObligationGroupSummary aggregates obligations sharing a type, entity and currency.
type ObligationGroupSummary struct {
	Type            ObligationType  `json:"type"`
	EntityName      string          `json:"entityName"`
	CurrencyCode    string          `json:"currencyCode"`
	OriginalAmount  decimal.Decimal `json:"originalAmount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Count           int             `json:"count"`
}
