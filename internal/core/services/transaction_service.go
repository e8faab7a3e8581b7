package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/dto"
	"github.com/pledgerhq/pledger_backend/internal/utils"
)

const (
	// maxBatchCreate bounds a bulk create request.
	maxBatchCreate = 1000
	// maxBulkDelete bounds a bulk delete request, before transfer-closure expansion.
	maxBulkDelete = 100
	// listPageSize is the page size used when paging through the store
	// transparently. It matches the store's per-call row cap.
	listPageSize = 1000
)

// BatchValidationError reports per-record validation failures for a bulk
// create. It unwraps to ErrValidation so handlers map it like any other
// validation failure while still exposing the per-record detail.
type BatchValidationError struct {
	Records []dto.BatchRecordError
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("batch validation failed for %d record(s)", len(e.Records))
}

func (e *BatchValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	classifier   portssvc.ObligationClassifier

	// useValidatedInsert routes single creates through the store-side
	// validated insert instead of the client-side check-then-insert path.
	useValidatedInsert bool
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	useValidatedInsert bool,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:            txnRepo,
		accountRepo:        accountRepo,
		categoryRepo:       categoryRepo,
		useValidatedInsert: useValidatedInsert,
	}
}

// SetClassifier wires the obligation classification hook. The hook is
// optional; creates simply skip it when unset.
func (s *transactionService) SetClassifier(classifier portssvc.ObligationClassifier) {
	s.classifier = classifier
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}

	now := time.Now()
	txn, fieldErrs := s.buildTransaction(ownerID, req, now)
	if len(fieldErrs) > 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(fieldErrs, "; "), apperrors.ErrValidation)
	}

	var created *domain.Transaction
	if s.useValidatedInsert {
		var err error
		created, err = s.txnRepo.CreateTransactionValidated(ctx, txn)
		if err != nil {
			s.LogError(ctx, err, "Validated insert failed", slog.String("account_id", txn.AccountID))
			return nil, err
		}
	} else {
		if err := s.checkReferences(ctx, ownerID, txn); err != nil {
			return nil, err
		}
		if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
			s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", txn.AccountID))
			return nil, fmt.Errorf("failed to save transaction: %w", err)
		}
		created = &txn
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", created.TransactionID),
		slog.String("type", string(created.Type)))
	s.notifyCreated(ctx, *created)
	return created, nil
}

func (s *transactionService) CreateTransfer(ctx context.Context, ownerID string, req dto.CreateTransferRequest) (*dto.TransferResult, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("transfer source and destination must differ: %w", apperrors.ErrValidation)
	}
	currency := utils.NormalizeCurrencyCode(req.CurrencyCode)
	if !utils.IsValidCurrencyCode(currency) {
		return nil, fmt.Errorf("invalid currency code %q: %w", req.CurrencyCode, apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ownerID, []string{req.FromAccountID, req.ToAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transfer accounts")
		return nil, fmt.Errorf("failed to load transfer accounts: %w", err)
	}
	for _, accountID := range []string{req.FromAccountID, req.ToAccountID} {
		account, ok := accounts[accountID]
		if !ok {
			return nil, fmt.Errorf("account %s not found: %w", accountID, apperrors.ErrNotFound)
		}
		if account.Status != domain.AccountActive {
			return nil, fmt.Errorf("account %s is not active: %w", accountID, apperrors.ErrValidation)
		}
		if account.CurrencyCode != currency {
			return nil, fmt.Errorf("account %s currency %s does not match transfer currency %s: %w",
				accountID, account.CurrencyCode, currency, apperrors.ErrConflict)
		}
	}

	now := time.Now()
	date := req.Date.Time
	if req.Date.DateOnly {
		date = utils.WithTimeOfDay(date, now)
	}

	transferID := utils.GenerateID("trf")
	outID := utils.GenerateID("txn")
	inID := utils.GenerateID("txn")
	audit := domain.AuditFields{CreatedAt: now, UpdatedAt: now}

	out := domain.Transaction{
		TransactionID:       outID,
		OwnerID:             ownerID,
		AccountID:           req.FromAccountID,
		Date:                date,
		Amount:              req.Amount.Neg(),
		CurrencyCode:        currency,
		Description:         req.Description,
		Type:                domain.TxnTransferOut,
		Status:              domain.TxnCleared,
		TransferID:          &transferID,
		LinkedTransactionID: &inID,
		AuditFields:         audit,
	}
	in := domain.Transaction{
		TransactionID:       inID,
		OwnerID:             ownerID,
		AccountID:           req.ToAccountID,
		Date:                date,
		Amount:              req.Amount,
		CurrencyCode:        currency,
		Description:         req.Description,
		Type:                domain.TxnTransferIn,
		Status:              domain.TxnCleared,
		TransferID:          &transferID,
		LinkedTransactionID: &outID,
		AuditFields:         audit,
	}

	if err := s.txnRepo.SaveTransfer(ctx, out, in); err != nil {
		s.LogError(ctx, err, "Failed to save transfer", slog.String("transfer_id", transferID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}
	s.LogInfo(ctx, "Transfer created",
		slog.String("transfer_id", transferID),
		slog.String("from", req.FromAccountID),
		slog.String("to", req.ToAccountID))
	return &dto.TransferResult{TransferID: transferID, Out: out, In: in}, nil
}

func (s *transactionService) CreateTransactionsBatch(ctx context.Context, ownerID string, req dto.BatchCreateTransactionsRequest) ([]domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if len(req.Transactions) == 0 {
		return nil, fmt.Errorf("batch must contain at least one transaction: %w", apperrors.ErrValidation)
	}
	if len(req.Transactions) > maxBatchCreate {
		return nil, fmt.Errorf("batch size %d exceeds the maximum of %d: %w",
			len(req.Transactions), maxBatchCreate, apperrors.ErrValidation)
	}

	now := time.Now()
	txns := make([]domain.Transaction, 0, len(req.Transactions))
	recordErrs := make(map[int][]string)
	for i, record := range req.Transactions {
		txn, fieldErrs := s.buildTransaction(ownerID, record, now)
		if len(fieldErrs) > 0 {
			recordErrs[i] = append(recordErrs[i], fieldErrs...)
		}
		txns = append(txns, txn)
	}

	// Referential checks against accounts and categories are done in bulk so
	// a 1000-record batch costs two lookups, not two thousand.
	accountIDs := make([]string, 0, len(txns))
	categoryIDs := make([]string, 0, len(txns))
	seenAccounts := make(map[string]bool)
	seenCategories := make(map[string]bool)
	for _, txn := range txns {
		if txn.AccountID != "" && !seenAccounts[txn.AccountID] {
			seenAccounts[txn.AccountID] = true
			accountIDs = append(accountIDs, txn.AccountID)
		}
		if txn.CategoryID != nil && !seenCategories[*txn.CategoryID] {
			seenCategories[*txn.CategoryID] = true
			categoryIDs = append(categoryIDs, *txn.CategoryID)
		}
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ownerID, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load batch accounts")
		return nil, fmt.Errorf("failed to load batch accounts: %w", err)
	}
	categories := map[string]domain.Category{}
	if len(categoryIDs) > 0 {
		categories, err = s.categoryRepo.FindCategoriesByIDs(ctx, ownerID, categoryIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to load batch categories")
			return nil, fmt.Errorf("failed to load batch categories: %w", err)
		}
	}

	for i, txn := range txns {
		account, ok := accounts[txn.AccountID]
		switch {
		case !ok:
			recordErrs[i] = append(recordErrs[i], fmt.Sprintf("account %s not found", txn.AccountID))
		case account.Status != domain.AccountActive:
			recordErrs[i] = append(recordErrs[i], fmt.Sprintf("account %s is not active", txn.AccountID))
		case account.CurrencyCode != txn.CurrencyCode:
			recordErrs[i] = append(recordErrs[i], fmt.Sprintf("currency %s does not match account currency %s",
				txn.CurrencyCode, account.CurrencyCode))
		}
		if txn.CategoryID != nil {
			category, ok := categories[*txn.CategoryID]
			switch {
			case !ok:
				recordErrs[i] = append(recordErrs[i], fmt.Sprintf("category %s not found", *txn.CategoryID))
			case !category.IsActive:
				recordErrs[i] = append(recordErrs[i], fmt.Sprintf("category %s is not active", *txn.CategoryID))
			}
		}
	}

	if len(recordErrs) > 0 {
		batchErr := &BatchValidationError{Records: make([]dto.BatchRecordError, 0, len(recordErrs))}
		for i := range req.Transactions {
			if errs, ok := recordErrs[i]; ok {
				batchErr.Records = append(batchErr.Records, dto.BatchRecordError{Index: i, Errors: errs})
			}
		}
		return nil, batchErr
	}

	if err := s.txnRepo.SaveTransactions(ctx, txns); err != nil {
		s.LogError(ctx, err, "Failed to save transaction batch", slog.Int("count", len(txns)))
		return nil, fmt.Errorf("failed to save transaction batch: %w", err)
	}
	s.LogInfo(ctx, "Transaction batch created", slog.Int("count", len(txns)))
	s.notifyCreated(ctx, txns...)
	return txns, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	filter, err := s.buildListFilter(params)
	if err != nil {
		return nil, err
	}

	// An explicit limit or offset means the caller drives pagination.
	if params.Limit != nil || params.Offset != nil {
		if params.Limit != nil {
			if *params.Limit <= 0 {
				return nil, fmt.Errorf("limit must be positive: %w", apperrors.ErrValidation)
			}
			filter.Limit = *params.Limit
		}
		if params.Offset != nil {
			if *params.Offset < 0 {
				return nil, fmt.Errorf("offset must not be negative: %w", apperrors.ErrValidation)
			}
			filter.Offset = *params.Offset
		}
		txns, err := s.txnRepo.ListTransactions(ctx, ownerID, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions")
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		return txns, nil
	}

	// Otherwise page through the store until a short page, so callers see the
	// complete result regardless of the store's per-call row cap.
	all := make([]domain.Transaction, 0, listPageSize)
	filter.Limit = listPageSize
	for offset := 0; ; offset += listPageSize {
		filter.Offset = offset
		page, err := s.txnRepo.ListTransactions(ctx, ownerID, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions", slog.Int("offset", offset))
			return nil, fmt.Errorf("failed to list transactions: %w", err)
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
	}
}

func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsDeleted() {
		return nil, fmt.Errorf("transaction %s is deleted: %w", transactionID, apperrors.ErrNotFound)
	}
	if req.IsEmpty() {
		return txn, nil
	}

	// Transfer legs stay paired with their partner row; the fields that would
	// break the pairing are frozen.
	if txn.Type.IsTransferLeg() {
		if req.Amount != nil || req.Type != nil || req.AccountID != nil || req.CurrencyCode != nil {
			return nil, fmt.Errorf("amount, type, account and currency of a transfer leg cannot change: %w", apperrors.ErrState)
		}
	}

	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, fmt.Errorf("invalid transaction type %q: %w", *req.Type, apperrors.ErrValidation)
		}
		if req.Type.IsTransferLeg() != txn.Type.IsTransferLeg() {
			return nil, fmt.Errorf("a transaction cannot change into or out of a transfer leg: %w", apperrors.ErrState)
		}
		txn.Type = *req.Type
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid transaction status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		txn.Status = *req.Status
	}
	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
	}
	if req.CurrencyCode != nil {
		currency := utils.NormalizeCurrencyCode(*req.CurrencyCode)
		if !utils.IsValidCurrencyCode(currency) {
			return nil, fmt.Errorf("invalid currency code %q: %w", *req.CurrencyCode, apperrors.ErrValidation)
		}
		txn.CurrencyCode = currency
	}
	if req.AccountID != nil || req.CurrencyCode != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, ownerID, txn.AccountID)
		if err != nil {
			return nil, err
		}
		if account.Status != domain.AccountActive {
			return nil, fmt.Errorf("account %s is not active: %w", txn.AccountID, apperrors.ErrValidation)
		}
		if req.CurrencyCode == nil {
			txn.CurrencyCode = account.CurrencyCode
		} else if account.CurrencyCode != txn.CurrencyCode {
			return nil, fmt.Errorf("currency %s does not match account currency %s: %w",
				txn.CurrencyCode, account.CurrencyCode, apperrors.ErrConflict)
		}
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			if !txn.Type.IsTransferLeg() {
				return nil, fmt.Errorf("category is required for non-transfer transactions: %w", apperrors.ErrValidation)
			}
			txn.CategoryID = nil
		} else {
			category, err := s.categoryRepo.FindCategoryByID(ctx, ownerID, *req.CategoryID)
			if err != nil {
				return nil, err
			}
			if !category.IsActive {
				return nil, fmt.Errorf("category %s is not active: %w", *req.CategoryID, apperrors.ErrValidation)
			}
			categoryID := *req.CategoryID
			txn.CategoryID = &categoryID
		}
	}
	if req.Amount != nil {
		if req.Amount.IsZero() {
			return nil, fmt.Errorf("amount must not be zero: %w", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Date != nil {
		if req.Date.DateOnly {
			// A bare date keeps the original clock reading so intra-day
			// ordering survives the edit.
			txn.Date = utils.WithTimeOfDay(req.Date.Time, txn.Date)
		} else {
			txn.Date = req.Date.Time
		}
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	txn.UpdatedAt = time.Now()

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) ([]string, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	closure, err := s.txnRepo.FindTransferClosure(ctx, ownerID, []string{transactionID})
	if err != nil {
		s.LogError(ctx, err, "Failed to expand transfer closure", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to expand transfer closure: %w", err)
	}
	if len(closure) == 0 {
		return nil, fmt.Errorf("transaction %s not found: %w", transactionID, apperrors.ErrNotFound)
	}

	deleted, err := s.txnRepo.SoftDeleteTransactions(ctx, ownerID, closure, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to soft-delete transactions", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to soft-delete transactions: %w", err)
	}
	if len(deleted) == 0 {
		return nil, fmt.Errorf("transaction %s is already deleted: %w", transactionID, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.Int("deleted_count", len(deleted)))
	return deleted, nil
}

func (s *transactionService) DeleteTransactions(ctx context.Context, ownerID string, transactionIDs []string) (*dto.BulkDeleteResult, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if len(transactionIDs) == 0 {
		return nil, fmt.Errorf("at least one transaction id is required: %w", apperrors.ErrValidation)
	}
	if len(transactionIDs) > maxBulkDelete {
		return nil, fmt.Errorf("bulk delete size %d exceeds the maximum of %d: %w",
			len(transactionIDs), maxBulkDelete, apperrors.ErrValidation)
	}

	closure, err := s.txnRepo.FindTransferClosure(ctx, ownerID, transactionIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to expand transfer closure", slog.Int("requested", len(transactionIDs)))
		return nil, fmt.Errorf("failed to expand transfer closure: %w", err)
	}

	deleted := []string{}
	if len(closure) > 0 {
		deleted, err = s.txnRepo.SoftDeleteTransactions(ctx, ownerID, closure, time.Now())
		if err != nil {
			s.LogError(ctx, err, "Failed to soft-delete transactions", slog.Int("requested", len(transactionIDs)))
			return nil, fmt.Errorf("failed to soft-delete transactions: %w", err)
		}
	}
	s.LogInfo(ctx, "Transactions deleted",
		slog.Int("requested", len(transactionIDs)),
		slog.Int("deleted", len(deleted)))
	return &dto.BulkDeleteResult{RequestedIDs: transactionIDs, DeletedIDs: deleted}, nil
}

// buildTransaction performs the structural validation shared by single and
// batch creation and assembles the domain row. Referential checks against
// accounts and categories happen separately.
func (s *transactionService) buildTransaction(ownerID string, req dto.CreateTransactionRequest, now time.Time) (domain.Transaction, []string) {
	var fieldErrs []string

	if req.AccountID == "" {
		fieldErrs = append(fieldErrs, "accountID is required")
	}
	if !req.Type.IsValid() {
		fieldErrs = append(fieldErrs, fmt.Sprintf("invalid transaction type %q", req.Type))
	}
	status := req.Status
	if status == "" {
		status = domain.TxnCleared
	}
	if !status.IsValid() {
		fieldErrs = append(fieldErrs, fmt.Sprintf("invalid transaction status %q", req.Status))
	}
	currency := utils.NormalizeCurrencyCode(req.CurrencyCode)
	if !utils.IsValidCurrencyCode(currency) {
		fieldErrs = append(fieldErrs, fmt.Sprintf("invalid currency code %q", req.CurrencyCode))
	}
	if req.Amount == nil {
		fieldErrs = append(fieldErrs, "amount is required")
	} else if req.Amount.IsZero() {
		fieldErrs = append(fieldErrs, "amount must not be zero")
	}
	if req.Date.IsZero() {
		fieldErrs = append(fieldErrs, "date is required")
	}
	if req.CategoryID == nil && !req.Type.IsTransferLeg() {
		fieldErrs = append(fieldErrs, "category is required for non-transfer transactions")
	}
	if len(fieldErrs) > 0 {
		return domain.Transaction{}, fieldErrs
	}

	date := req.Date.Time
	if req.Date.DateOnly {
		// Bare dates take the current time of day so rows created the same
		// calendar day keep their insertion order.
		date = utils.WithTimeOfDay(date, now)
	}

	return domain.Transaction{
		TransactionID: utils.GenerateID("txn"),
		OwnerID:       ownerID,
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Date:          date,
		Amount:        *req.Amount,
		CurrencyCode:  currency,
		Description:   req.Description,
		Type:          req.Type,
		Status:        status,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}, nil
}

// checkReferences validates the account and category references on the
// client-side creation path. The store-side validated insert performs the
// same checks atomically.
func (s *transactionService) checkReferences(ctx context.Context, ownerID string, txn domain.Transaction) error {
	account, err := s.accountRepo.FindAccountByID(ctx, ownerID, txn.AccountID)
	if err != nil {
		return err
	}
	if account.Status != domain.AccountActive {
		return fmt.Errorf("account %s is not active: %w", txn.AccountID, apperrors.ErrValidation)
	}
	if account.CurrencyCode != txn.CurrencyCode {
		return fmt.Errorf("currency %s does not match account currency %s: %w",
			txn.CurrencyCode, account.CurrencyCode, apperrors.ErrConflict)
	}
	if txn.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, ownerID, *txn.CategoryID)
		if err != nil {
			return err
		}
		if !category.IsActive {
			return fmt.Errorf("category %s is not active: %w", *txn.CategoryID, apperrors.ErrValidation)
		}
	}
	return nil
}

// buildListFilter translates the list params into the repository filter,
// expanding the month shorthand.
func (s *transactionService) buildListFilter(params dto.ListTransactionsParams) (portsrepo.ListTransactionsFilter, error) {
	filter := portsrepo.ListTransactionsFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		DateFrom:   params.DateFrom,
		DateTo:     params.DateTo,
		Since:      params.Since,
	}
	if params.Status != nil {
		if !params.Status.IsValid() {
			return filter, fmt.Errorf("invalid transaction status %q: %w", *params.Status, apperrors.ErrValidation)
		}
		filter.Status = params.Status
	}
	if params.Type != nil {
		if !params.Type.IsValid() {
			return filter, fmt.Errorf("invalid transaction type %q: %w", *params.Type, apperrors.ErrValidation)
		}
		filter.Type = params.Type
	}
	if params.Month != nil {
		if params.DateFrom != nil || params.DateTo != nil {
			return filter, fmt.Errorf("month cannot be combined with dateFrom/dateTo: %w", apperrors.ErrValidation)
		}
		from, to, err := utils.MonthRange(*params.Month)
		if err != nil {
			return filter, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
		}
		filter.DateFrom = &from
		filter.DateTo = &to
	}
	return filter, nil
}

// notifyCreated runs the obligation classification hook for each created
// transaction. Hook failures never fail the creation; they are logged and
// dropped.
func (s *transactionService) notifyCreated(ctx context.Context, txns ...domain.Transaction) {
	if s.classifier == nil {
		return
	}
	for _, txn := range txns {
		if txn.CategoryID == nil {
			continue
		}
		if err := s.classifier.HandleTransactionCreated(ctx, txn); err != nil {
			s.LogWarn(ctx, "Obligation classification hook failed",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("error", err.Error()))
		}
	}
}
