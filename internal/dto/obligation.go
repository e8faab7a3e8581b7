package dto

import (
	"time"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest amortizes an active obligation by a strictly positive amount.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Notes  string          `json:"notes"`
}

// UpdateObligationRequest changes obligation metadata. Amount fields are not
// reachable here; they move only through payment recording.
type UpdateObligationRequest struct {
	EntityName *string                  `json:"entityName"`
	Notes      *string                  `json:"notes"`
	Status     *domain.ObligationStatus `json:"status"`
}

// ListObligationsParams defines query parameters for listing obligations.
type ListObligationsParams struct {
	Type       *domain.ObligationType   `form:"type"`
	Status     *domain.ObligationStatus `form:"status"`
	EntityName *string                  `form:"entity"`
}

// ObligationResponse defines the data returned for an obligation record.
type ObligationResponse struct {
	ObligationID          string                  `json:"obligationID"`
	Type                  domain.ObligationType   `json:"type"`
	TransactionID         string                  `json:"transactionID"`
	EntityName            string                  `json:"entityName"`
	CurrencyCode          string                  `json:"currencyCode"`
	OriginalAmount        decimal.Decimal         `json:"originalAmount"`
	PaidAmount            decimal.Decimal         `json:"paidAmount"`
	RemainingAmount       decimal.Decimal         `json:"remainingAmount"`
	Status                domain.ObligationStatus `json:"status"`
	PaymentTransactionIDs []string                `json:"paymentTransactionIDs"`
	Notes                 string                  `json:"notes"`
	CreatedAt             time.Time               `json:"createdAt"`
	UpdatedAt             time.Time               `json:"updatedAt"`
}

// ToObligationResponse converts a domain.Obligation to its DTO.
func ToObligationResponse(o *domain.Obligation) ObligationResponse {
	return ObligationResponse{
		ObligationID:          o.ObligationID,
		Type:                  o.Type,
		TransactionID:         o.TransactionID,
		EntityName:            o.EntityName,
		CurrencyCode:          o.CurrencyCode,
		OriginalAmount:        o.OriginalAmount,
		PaidAmount:            o.PaidAmount,
		RemainingAmount:       o.RemainingAmount,
		Status:                o.Status,
		PaymentTransactionIDs: o.PaymentTransactionIDs,
		Notes:                 o.Notes,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

// ToObligationResponses converts a slice of domain obligations to DTOs.
func ToObligationResponses(obligations []domain.Obligation) []ObligationResponse {
	res := make([]ObligationResponse, len(obligations))
	for i := range obligations {
		res[i] = ToObligationResponse(&obligations[i])
	}
	return res
}

// ObligationSummaryResponse groups obligations by type, entity and currency.
type ObligationSummaryResponse struct {
	Groups []domain.ObligationGroupSummary `json:"groups"`
	Count  int                             `json:"count"`
}
