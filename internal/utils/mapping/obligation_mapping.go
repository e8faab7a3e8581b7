package mapping

import (
	"strings"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/pledgerhq/pledger_backend/internal/models"
)

// paymentIDsSeparator joins the ordered payment history into one column.
const paymentIDsSeparator = ","

// ToModelObligation converts a domain Obligation to a model Obligation
func ToModelObligation(d domain.Obligation) models.Obligation {
	return models.Obligation{
		ObligationID:          d.ObligationID,
		OwnerID:               d.OwnerID,
		Type:                  string(d.Type),
		TransactionID:         d.TransactionID,
		EntityName:            d.EntityName,
		CurrencyCode:          d.CurrencyCode,
		OriginalAmount:        d.OriginalAmount,
		PaidAmount:            d.PaidAmount,
		RemainingAmount:       d.RemainingAmount,
		Status:                string(d.Status),
		PaymentTransactionIDs: strings.Join(d.PaymentTransactionIDs, paymentIDsSeparator),
		Notes:                 d.Notes,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainObligation converts a model Obligation to a domain Obligation
func ToDomainObligation(m models.Obligation) domain.Obligation {
	var paymentIDs []string
	if m.PaymentTransactionIDs != "" {
		paymentIDs = strings.Split(m.PaymentTransactionIDs, paymentIDsSeparator)
	}
	return domain.Obligation{
		ObligationID:          m.ObligationID,
		OwnerID:               m.OwnerID,
		Type:                  domain.ObligationType(m.Type),
		TransactionID:         m.TransactionID,
		EntityName:            m.EntityName,
		CurrencyCode:          m.CurrencyCode,
		OriginalAmount:        m.OriginalAmount,
		PaidAmount:            m.PaidAmount,
		RemainingAmount:       m.RemainingAmount,
		Status:                domain.ObligationStatus(m.Status),
		PaymentTransactionIDs: paymentIDs,
		Notes:                 m.Notes,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}
