package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	"github.com/pledgerhq/pledger_backend/internal/models"
	"github.com/pledgerhq/pledger_backend/internal/utils/mapping"
)

type PgxObligationRepository struct {
	BaseRepository
}

// newPgxObligationRepository creates a new repository for obligation records.
func newPgxObligationRepository(pool *pgxpool.Pool) portsrepo.ObligationRepositoryFacade {
	return &PgxObligationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ObligationRepositoryFacade = (*PgxObligationRepository)(nil)

const obligationColumns = `obligation_id, owner_id, type, transaction_id, entity_name, currency_code, original_amount, paid_amount, remaining_amount, status, payment_transaction_ids, notes, created_at, updated_at`

func scanObligation(row pgx.Row) (models.Obligation, error) {
	var m models.Obligation
	err := row.Scan(
		&m.ObligationID,
		&m.OwnerID,
		&m.Type,
		&m.TransactionID,
		&m.EntityName,
		&m.CurrencyCode,
		&m.OriginalAmount,
		&m.PaidAmount,
		&m.RemainingAmount,
		&m.Status,
		&m.PaymentTransactionIDs,
		&m.Notes,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

// SaveObligation inserts a new obligation record.
func (r *PgxObligationRepository) SaveObligation(ctx context.Context, obligation domain.Obligation) error {
	m := mapping.ToModelObligation(obligation)

	query := `
		INSERT INTO obligations (obligation_id, owner_id, type, transaction_id, entity_name, currency_code, original_amount, paid_amount, remaining_amount, status, payment_transaction_ids, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ObligationID,
		m.OwnerID,
		m.Type,
		m.TransactionID,
		m.EntityName,
		m.CurrencyCode,
		m.OriginalAmount,
		m.PaidAmount,
		m.RemainingAmount,
		m.Status,
		m.PaymentTransactionIDs,
		m.Notes,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: obligation with ID %s already exists", apperrors.ErrDuplicate, m.ObligationID)
		}
		return fmt.Errorf("failed to save obligation %s: %w", m.ObligationID, err)
	}
	return nil
}

// FindObligationByID retrieves an obligation by its ID, scoped to the owner.
func (r *PgxObligationRepository) FindObligationByID(ctx context.Context, ownerID string, obligationID string) (*domain.Obligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM obligations WHERE obligation_id = $1 AND owner_id = $2;`

	m, err := scanObligation(r.Pool.QueryRow(ctx, query, obligationID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find obligation by ID %s: %w", obligationID, err)
	}

	ob := mapping.ToDomainObligation(m)
	return &ob, nil
}

// ListObligations retrieves the owner's obligations matching the filter, newest first.
func (r *PgxObligationRepository) ListObligations(ctx context.Context, ownerID string, filter portsrepo.ListObligationsFilter) ([]domain.Obligation, error) {
	query := `SELECT ` + obligationColumns + ` FROM obligations WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.EntityName != nil {
		args = append(args, *filter.EntityName)
		query += fmt.Sprintf(" AND entity_name = $%d", len(args))
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	defer rows.Close()

	var obligations []domain.Obligation
	for rows.Next() {
		m, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan obligation row: %w", err)
		}
		obligations = append(obligations, mapping.ToDomainObligation(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating obligation rows: %w", err)
	}
	return obligations, nil
}

// UpdateObligation overwrites an obligation row, enforcing exactly-one-row semantics.
func (r *PgxObligationRepository) UpdateObligation(ctx context.Context, obligation domain.Obligation) error {
	m := mapping.ToModelObligation(obligation)

	query := `
		UPDATE obligations
		SET entity_name = $1, paid_amount = $2, remaining_amount = $3, status = $4,
		    payment_transaction_ids = $5, notes = $6, updated_at = $7
		WHERE obligation_id = $8 AND owner_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EntityName,
		m.PaidAmount,
		m.RemainingAmount,
		m.Status,
		m.PaymentTransactionIDs,
		m.Notes,
		m.UpdatedAt,
		m.ObligationID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update obligation %s: %w", m.ObligationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteObligation removes the record permanently.
func (r *PgxObligationRepository) DeleteObligation(ctx context.Context, ownerID string, obligationID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM obligations WHERE obligation_id = $1 AND owner_id = $2;`, obligationID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete obligation %s: %w", obligationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
