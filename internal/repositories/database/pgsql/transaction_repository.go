package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	"github.com/pledgerhq/pledger_backend/internal/models"
	"github.com/pledgerhq/pledger_backend/internal/utils/mapping"
)

// SQLSTATEs raised by the create_transaction_validated store function.
const (
	errcodeNotFound   = "P0404"
	errcodeConflict   = "P0409"
	errcodeValidation = "P0400"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, owner_id, account_id, category_id, date, amount, currency_code, description, type, status, transfer_id, linked_transaction_id, deleted_at, created_at, updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.AccountID,
		&m.CategoryID,
		&m.Date,
		&m.Amount,
		&m.CurrencyCode,
		&m.Description,
		&m.Type,
		&m.Status,
		&m.TransferID,
		&m.LinkedTransactionID,
		&m.DeletedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, owner_id, account_id, category_id, date, amount, currency_code, description, type, status, transfer_id, linked_transaction_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

func insertArgs(m models.Transaction) []interface{} {
	return []interface{}{
		m.TransactionID,
		m.OwnerID,
		m.AccountID,
		m.CategoryID,
		m.Date,
		m.Amount,
		m.CurrencyCode,
		m.Description,
		m.Type,
		m.Status,
		m.TransferID,
		m.LinkedTransactionID,
		m.CreatedAt,
		m.UpdatedAt,
	}
}

// mapStoreError translates SQLSTATEs raised by store-side validation into the
// application error taxonomy.
func mapStoreError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case errcodeNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, pgErr.Message)
	case errcodeConflict:
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.Message)
	case errcodeValidation:
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, pgErr.Message)
	case "23505":
		return fmt.Errorf("%w: transaction already exists", apperrors.ErrDuplicate)
	}
	return err
}

// CreateTransactionValidated calls the store-side function that performs all
// account/category/currency validation and the insert as one indivisible unit.
func (r *PgxTransactionRepository) CreateTransactionValidated(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	m := mapping.ToModelTransaction(txn)

	query := `
		SELECT ` + transactionColumns + `
		FROM create_transaction_validated($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	created, err := scanTransaction(r.Pool.QueryRow(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.AccountID,
		m.CategoryID,
		m.Date,
		m.Amount,
		m.CurrencyCode,
		m.Description,
		m.Type,
		m.Status,
		m.TransferID,
		m.LinkedTransactionID,
	))
	if err != nil {
		return nil, mapStoreError(err)
	}

	result := mapping.ToDomainTransaction(created)
	return &result, nil
}

// SaveTransaction inserts a pre-validated transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := r.Pool.Exec(ctx, insertTransactionQuery, insertArgs(m)...); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, mapStoreError(err))
	}
	return nil
}

// SaveTransfer inserts both legs of a transfer within one database transaction.
func (r *PgxTransactionRepository) SaveTransfer(ctx context.Context, out domain.Transaction, in domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, leg := range []domain.Transaction{out, in} {
		m := mapping.ToModelTransaction(leg)
		if _, err := tx.Exec(ctx, insertTransactionQuery, insertArgs(m)...); err != nil {
			return fmt.Errorf("failed to save transfer leg %s: %w", m.TransactionID, mapStoreError(err))
		}
	}

	return r.Commit(ctx, tx)
}

// SaveTransactions bulk-inserts pre-validated rows within one database transaction.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(insertTransactionQuery, insertArgs(mapping.ToModelTransaction(txn))...)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute transaction insert batch: %w", mapStoreError(err))
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its ID, deleted or not.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves one page of transactions matching the filter.
//
// In incremental-sync mode (filter.Since set) the result is the union of live
// rows touched at/after the cursor and soft-deleted rows whose update is
// at/after the cursor. Otherwise soft-deleted rows are excluded.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner_id = $1`
	args := []interface{}{ownerID}

	if filter.Since != nil {
		args = append(args, *filter.Since)
		n := len(args)
		query += fmt.Sprintf(
			" AND ((deleted_at IS NULL AND (created_at >= $%d OR updated_at >= $%d)) OR (deleted_at IS NOT NULL AND updated_at >= $%d))",
			n, n, n,
		)
	} else {
		query += " AND deleted_at IS NULL"
	}

	if filter.AccountID != nil {
		args = append(args, *filter.AccountID)
		query += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		query += fmt.Sprintf(" AND date < $%d", len(args))
	}

	query += " ORDER BY date DESC, created_at DESC NULLS LAST"

	limit := filter.Limit
	if limit <= 0 || limit > storeMaxRows {
		limit = storeMaxRows
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// FindTransferClosure expands the given ids into the full set of rows that
// must be deleted together: the rows themselves, every row sharing a
// transfer_id with any of them, and rows linked in either direction.
func (r *PgxTransactionRepository) FindTransferClosure(ctx context.Context, ownerID string, transactionIDs []string) ([]string, error) {
	if len(transactionIDs) == 0 {
		return nil, nil
	}

	query := `
		WITH seed AS (
			SELECT transaction_id, transfer_id, linked_transaction_id
			FROM transactions
			WHERE owner_id = $1 AND transaction_id = ANY($2)
		)
		SELECT DISTINCT t.transaction_id
		FROM transactions t
		JOIN seed s ON t.transaction_id = s.transaction_id
			OR (s.transfer_id IS NOT NULL AND t.transfer_id = s.transfer_id)
			OR t.transaction_id = s.linked_transaction_id
			OR t.linked_transaction_id = s.transaction_id
		WHERE t.owner_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve transfer closure: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan closure row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating closure rows: %w", err)
	}
	return ids, nil
}

// UpdateTransaction overwrites a transaction row, enforcing exactly-one-row semantics.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET account_id = $1, category_id = $2, date = $3, amount = $4, currency_code = $5,
		    description = $6, type = $7, status = $8, updated_at = $9
		WHERE transaction_id = $10 AND owner_id = $11 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CategoryID,
		m.Date,
		m.Amount,
		m.CurrencyCode,
		m.Description,
		m.Type,
		m.Status,
		m.UpdatedAt,
		m.TransactionID,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	switch n := cmdTag.RowsAffected(); {
	case n == 0:
		return apperrors.ErrNotFound
	case n > 1:
		// Unreachable with the primary key predicate; guarded anyway.
		return fmt.Errorf("%w: update touched %d rows for transaction %s", apperrors.ErrInternal, n, m.TransactionID)
	}
	return nil
}

// SoftDeleteTransactions marks every given row deleted in a single set-based
// update and returns the ids actually marked. Already-deleted rows are left
// untouched.
func (r *PgxTransactionRepository) SoftDeleteTransactions(ctx context.Context, ownerID string, transactionIDs []string, deletedAt time.Time) ([]string, error) {
	if len(transactionIDs) == 0 {
		return nil, nil
	}

	query := `
		UPDATE transactions
		SET deleted_at = $3, updated_at = $3
		WHERE owner_id = $1 AND transaction_id = ANY($2) AND deleted_at IS NULL
		RETURNING transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, transactionIDs, deletedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to soft-delete transactions: %w", err)
	}
	defer rows.Close()

	var deleted []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan deleted id: %w", err)
		}
		deleted = append(deleted, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deleted ids: %w", err)
	}
	return deleted, nil
}
