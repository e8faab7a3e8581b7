package mapping

import (
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/pledgerhq/pledger_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		OwnerID:             d.OwnerID,
		AccountID:           d.AccountID,
		CategoryID:          d.CategoryID,
		Date:                d.Date,
		Amount:              d.Amount,
		CurrencyCode:        d.CurrencyCode,
		Description:         d.Description,
		Type:                string(d.Type),
		Status:              string(d.Status),
		TransferID:          d.TransferID,
		LinkedTransactionID: d.LinkedTransactionID,
		DeletedAt:           d.DeletedAt,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		OwnerID:             m.OwnerID,
		AccountID:           m.AccountID,
		CategoryID:          m.CategoryID,
		Date:                m.Date,
		Amount:              m.Amount,
		CurrencyCode:        m.CurrencyCode,
		Description:         m.Description,
		Type:                domain.TransactionType(m.Type),
		Status:              domain.TransactionStatus(m.Status),
		TransferID:          m.TransferID,
		LinkedTransactionID: m.LinkedTransactionID,
		DeletedAt:           m.DeletedAt,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}
