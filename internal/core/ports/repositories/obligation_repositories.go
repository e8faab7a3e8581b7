package repositories

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
)

// ListObligationsFilter narrows an obligation listing. Nil fields are ignored.
type ListObligationsFilter struct {
	Type       *domain.ObligationType
	Status     *domain.ObligationStatus
	EntityName *string
}

// ObligationReader defines read operations for obligation records
type ObligationReader interface {
	// FindObligationByID retrieves an obligation owned by ownerID.
	FindObligationByID(ctx context.Context, ownerID string, obligationID string) (*domain.Obligation, error)

	// ListObligations retrieves the owner's obligations matching the filter,
	// newest first.
	ListObligations(ctx context.Context, ownerID string, filter ListObligationsFilter) ([]domain.Obligation, error)
}

// ObligationWriter defines write operations for obligation records
type ObligationWriter interface {
	// SaveObligation persists a new obligation record.
	SaveObligation(ctx context.Context, obligation domain.Obligation) error

	// UpdateObligation overwrites an obligation row, enforcing
	// exactly-one-row semantics. Both the amortization update and the
	// metadata update go through here; services decide which fields move.
	UpdateObligation(ctx context.Context, obligation domain.Obligation) error

	// DeleteObligation removes the record permanently. It has no effect on any
	// transaction the record spawned.
	DeleteObligation(ctx context.Context, ownerID string, obligationID string) error
}

// ObligationRepositoryFacade combines all obligation-related repository interfaces
type ObligationRepositoryFacade interface {
	ObligationReader
	ObligationWriter
}
