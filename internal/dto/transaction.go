package dto

import (
	"time"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// CategoryID is required unless Type is TRANSFER_OUT or TRANSFER_IN; that rule
// is enforced in the service since it spans two fields.
type CreateTransactionRequest struct {
	AccountID    string                   `json:"accountID" binding:"required"`
	CategoryID   *string                  `json:"categoryID"`
	Date         FlexDate                 `json:"date" binding:"required"`
	Amount       *decimal.Decimal         `json:"amount" binding:"required"`
	CurrencyCode string                   `json:"currencyCode" binding:"required,currencycode"`
	Description  string                   `json:"description"`
	Type         domain.TransactionType   `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER TRANSFER_OUT TRANSFER_IN"`
	Status       domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING CLEARED RECONCILED CANCELLED"`
}

// CreateTransferRequest defines the data needed to create a paired transfer.
type CreateTransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required,nefield=FromAccountID"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,currencycode"`
	Date          FlexDate        `json:"date" binding:"required"`
	Description   string          `json:"description"`
}

// TransferResult carries both created legs of a transfer.
type TransferResult struct {
	TransferID string             `json:"transferID"`
	Out        domain.Transaction `json:"out"`
	In         domain.Transaction `json:"in"`
}

// BatchCreateTransactionsRequest wraps up to 1000 records created all-or-nothing.
type BatchCreateTransactionsRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
}

// BatchRecordError reports every validation failure for one batch record.
type BatchRecordError struct {
	Index  int      `json:"index"`
	Errors []string `json:"errors"`
}

// UpdateTransactionRequest defines the fields that may change on update.
// Only fields present in the payload are applied; an empty payload is a no-op.
type UpdateTransactionRequest struct {
	AccountID    *string                   `json:"accountID"`
	CategoryID   *string                   `json:"categoryID"`
	Date         *FlexDate                 `json:"date"`
	Amount       *decimal.Decimal          `json:"amount"`
	CurrencyCode *string                   `json:"currencyCode"`
	Description  *string                   `json:"description"`
	Type         *domain.TransactionType   `json:"type"`
	Status       *domain.TransactionStatus `json:"status"`
}

// IsEmpty reports whether the payload carries no recognized field.
func (r UpdateTransactionRequest) IsEmpty() bool {
	return r.AccountID == nil && r.CategoryID == nil && r.Date == nil &&
		r.Amount == nil && r.CurrencyCode == nil && r.Description == nil &&
		r.Type == nil && r.Status == nil
}

// ListTransactionsParams defines query parameters for listing transactions.
//
// Month is a YYYY-MM shorthand expanded to [month-01, next-month-01).
// Since switches the listing into incremental-sync mode. When neither Limit
// nor Offset is supplied the service pages through the store transparently
// and returns all matching rows.
type ListTransactionsParams struct {
	AccountID  *string                   `form:"accountID"`
	CategoryID *string                   `form:"categoryID"`
	Status     *domain.TransactionStatus `form:"status"`
	Type       *domain.TransactionType   `form:"type"`
	DateFrom   *time.Time                `form:"dateFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	DateTo     *time.Time                `form:"dateTo" time_format:"2006-01-02T15:04:05Z07:00"`
	Month      *string                   `form:"month"`
	Since      *time.Time                `form:"since" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit      *int                      `form:"limit"`
	Offset     *int                      `form:"offset"`
}

// BulkDeleteTransactionsRequest names up to 100 transactions to soft-delete.
type BulkDeleteTransactionsRequest struct {
	TransactionIDs []string `json:"transactionIDs" binding:"required,min=1"`
}

// BulkDeleteResult reports both the requested ids and the full deleted set,
// which may be a strict superset once transfer closures are expanded.
type BulkDeleteResult struct {
	RequestedIDs []string `json:"requestedIDs"`
	DeletedIDs   []string `json:"deletedIDs"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string                   `json:"transactionID"`
	AccountID           string                   `json:"accountID"`
	CategoryID          *string                  `json:"categoryID"`
	Date                time.Time                `json:"date"`
	Amount              decimal.Decimal          `json:"amount"`
	CurrencyCode        string                   `json:"currencyCode"`
	Description         string                   `json:"description"`
	Type                domain.TransactionType   `json:"type"`
	Status              domain.TransactionStatus `json:"status"`
	TransferID          *string                  `json:"transferID,omitempty"`
	LinkedTransactionID *string                  `json:"linkedTransactionID,omitempty"`
	DeletedAt           *time.Time               `json:"deletedAt,omitempty"`
	CreatedAt           time.Time                `json:"createdAt"`
	UpdatedAt           time.Time                `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:       t.TransactionID,
		AccountID:           t.AccountID,
		CategoryID:          t.CategoryID,
		Date:                t.Date,
		Amount:              t.Amount,
		CurrencyCode:        t.CurrencyCode,
		Description:         t.Description,
		Type:                t.Type,
		Status:              t.Status,
		TransferID:          t.TransferID,
		LinkedTransactionID: t.LinkedTransactionID,
		DeletedAt:           t.DeletedAt,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
