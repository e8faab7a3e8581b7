package services

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/pledgerhq/pledger_backend/internal/dto"
)

// ObligationClassifier is the narrow hook the Transaction Ledger invokes after
// creating a transaction. Failures are logged by the caller, never propagated.
type ObligationClassifier interface {
	// HandleTransactionCreated creates an obligation record when the
	// transaction's category is configured as a borrowing or lending category.
	// A transaction without a category, or with an unconfigured one, is a no-op.
	HandleTransactionCreated(ctx context.Context, txn domain.Transaction) error
}

// ObligationReaderSvc defines read operations for obligation records
type ObligationReaderSvc interface {
	// GetObligationByID retrieves an obligation owned by the caller.
	GetObligationByID(ctx context.Context, ownerID string, obligationID string) (*domain.Obligation, error)

	// ListObligations retrieves the owner's obligations matching the filter.
	ListObligations(ctx context.Context, ownerID string, params dto.ListObligationsParams) ([]domain.Obligation, error)

	// Summarize groups matching obligations by type, entity and currency,
	// summing original/paid/remaining amounts and counts.
	Summarize(ctx context.Context, ownerID string, params dto.ListObligationsParams) (*dto.ObligationSummaryResponse, error)
}

// ObligationWriterSvc defines write operations for obligation records
type ObligationWriterSvc interface {
	// RecordPayment amortizes an active obligation: it creates a real payment
	// transaction through the Transaction Ledger, then moves the amount fields
	// and transitions to FULLY_PAID on zero-out.
	RecordPayment(ctx context.Context, ownerID string, obligationID string, req dto.RecordPaymentRequest) (*domain.Obligation, error)

	// MarkAsFullyPaid records one exact payment of the remaining amount.
	MarkAsFullyPaid(ctx context.Context, ownerID string, obligationID string) (*domain.Obligation, error)

	// UpdateObligation changes entity name, notes or status. It never touches
	// the amount fields.
	UpdateObligation(ctx context.Context, ownerID string, obligationID string, req dto.UpdateObligationRequest) (*domain.Obligation, error)

	// DeleteObligation removes the record permanently without touching the
	// transactions it spawned.
	DeleteObligation(ctx context.Context, ownerID string, obligationID string) error
}

// ObligationSvcFacade combines all obligation-related service interfaces
type ObligationSvcFacade interface {
	ObligationClassifier
	ObligationReaderSvc
	ObligationWriterSvc
}
