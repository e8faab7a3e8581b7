package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/dto"
	"github.com/pledgerhq/pledger_backend/internal/utils"
	"github.com/pledgerhq/pledger_backend/internal/utils/entity"
)

// obligationService tracks borrowings and lendings spawned from classified
// transactions and amortizes them through real payment transactions.
type obligationService struct {
	BaseService
	obligationRepo portsrepo.ObligationRepositoryFacade
	txnSvc         portssvc.TransactionSvcFacade
	settingsSvc    portssvc.SettingsSvcFacade
}

// NewObligationService creates a new obligation service.
func NewObligationService(
	repo portsrepo.ObligationRepositoryFacade,
	txnSvc portssvc.TransactionSvcFacade,
	settingsSvc portssvc.SettingsSvcFacade,
) portssvc.ObligationSvcFacade {
	return &obligationService{
		obligationRepo: repo,
		txnSvc:         txnSvc,
		settingsSvc:    settingsSvc,
	}
}

var _ portssvc.ObligationSvcFacade = (*obligationService)(nil)

// HandleTransactionCreated creates an obligation record when the transaction's
// category is configured as a borrowing or lending category. The counterparty
// name and note are parsed out of the description. Transactions without a
// category, or with an unconfigured one, do nothing.
func (s *obligationService) HandleTransactionCreated(ctx context.Context, txn domain.Transaction) error {
	if txn.CategoryID == nil {
		return nil
	}
	classification, err := s.settingsSvc.Classification(ctx, txn.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to resolve classification settings: %w", err)
	}
	obligationType, ok := classification.Classify(*txn.CategoryID)
	if !ok {
		return nil
	}

	entityName, note := entity.Parse(txn.Description)
	now := time.Now()
	original := txn.Amount.Abs()
	obligation := domain.Obligation{
		ObligationID:          utils.GenerateID("obl"),
		OwnerID:               txn.OwnerID,
		Type:                  obligationType,
		TransactionID:         txn.TransactionID,
		EntityName:            entityName,
		CurrencyCode:          txn.CurrencyCode,
		OriginalAmount:        original,
		PaidAmount:            decimal.Zero,
		RemainingAmount:       original,
		Status:                domain.ObligationActive,
		PaymentTransactionIDs: nil,
		Notes:                 note,
		AuditFields:           domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.obligationRepo.SaveObligation(ctx, obligation); err != nil {
		return fmt.Errorf("failed to save obligation: %w", err)
	}
	s.LogInfo(ctx, "Obligation created from transaction",
		slog.String("obligation_id", obligation.ObligationID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(obligationType)),
		slog.String("entity", entityName))
	return nil
}

func (s *obligationService) GetObligationByID(ctx context.Context, ownerID string, obligationID string) (*domain.Obligation, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.obligationRepo.FindObligationByID(ctx, ownerID, obligationID)
}

func (s *obligationService) ListObligations(ctx context.Context, ownerID string, params dto.ListObligationsParams) ([]domain.Obligation, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	filter, err := buildObligationFilter(params)
	if err != nil {
		return nil, err
	}
	obligations, err := s.obligationRepo.ListObligations(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list obligations")
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}
	return obligations, nil
}

// Summarize reduces matching obligations into per-(type, entity, currency)
// groups with summed amounts, ordered by type, entity then currency.
func (s *obligationService) Summarize(ctx context.Context, ownerID string, params dto.ListObligationsParams) (*dto.ObligationSummaryResponse, error) {
	obligations, err := s.ListObligations(ctx, ownerID, params)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		Type     domain.ObligationType
		Entity   string
		Currency string
	}
	groups := make(map[groupKey]*domain.ObligationGroupSummary)
	for i := range obligations {
		o := &obligations[i]
		key := groupKey{Type: o.Type, Entity: o.EntityName, Currency: o.CurrencyCode}
		g, ok := groups[key]
		if !ok {
			g = &domain.ObligationGroupSummary{
				Type:         o.Type,
				EntityName:   o.EntityName,
				CurrencyCode: o.CurrencyCode,
			}
			groups[key] = g
		}
		g.OriginalAmount = g.OriginalAmount.Add(o.OriginalAmount)
		g.PaidAmount = g.PaidAmount.Add(o.PaidAmount)
		g.RemainingAmount = g.RemainingAmount.Add(o.RemainingAmount)
		g.Count++
	}

	out := make([]domain.ObligationGroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		if out[i].EntityName != out[j].EntityName {
			return out[i].EntityName < out[j].EntityName
		}
		return out[i].CurrencyCode < out[j].CurrencyCode
	})
	return &dto.ObligationSummaryResponse{Groups: out, Count: len(obligations)}, nil
}

// RecordPayment creates a real payment transaction through the Transaction
// Ledger, then moves the obligation's amount fields and transitions it to
// FULLY_PAID when the remaining amount reaches zero. Overpayment is allowed
// and settles the obligation with a negative remainder.
func (s *obligationService) RecordPayment(ctx context.Context, ownerID string, obligationID string, req dto.RecordPaymentRequest) (*domain.Obligation, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}
	obligation, err := s.obligationRepo.FindObligationByID(ctx, ownerID, obligationID)
	if err != nil {
		return nil, err
	}
	if obligation.Status != domain.ObligationActive {
		return nil, fmt.Errorf("obligation %s is %s, payments require an active obligation: %w",
			obligationID, obligation.Status, apperrors.ErrState)
	}

	payment, err := s.createPaymentTransaction(ctx, ownerID, obligation, req)
	if err != nil {
		return nil, err
	}

	obligation.PaidAmount = obligation.PaidAmount.Add(req.Amount)
	obligation.RemainingAmount = obligation.OriginalAmount.Sub(obligation.PaidAmount)
	obligation.PaymentTransactionIDs = append(obligation.PaymentTransactionIDs, payment.TransactionID)
	if !obligation.RemainingAmount.IsPositive() {
		obligation.Status = domain.ObligationFullyPaid
	}
	obligation.UpdatedAt = time.Now()

	if err := s.obligationRepo.UpdateObligation(ctx, *obligation); err != nil {
		s.LogError(ctx, err, "Failed to update obligation after payment",
			slog.String("obligation_id", obligationID),
			slog.String("payment_transaction_id", payment.TransactionID))
		return nil, fmt.Errorf("failed to update obligation after payment: %w", err)
	}
	s.LogInfo(ctx, "Payment recorded",
		slog.String("obligation_id", obligationID),
		slog.String("payment_transaction_id", payment.TransactionID),
		slog.String("status", string(obligation.Status)))
	return obligation, nil
}

// MarkAsFullyPaid records one exact payment of the remaining amount.
func (s *obligationService) MarkAsFullyPaid(ctx context.Context, ownerID string, obligationID string) (*domain.Obligation, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	obligation, err := s.obligationRepo.FindObligationByID(ctx, ownerID, obligationID)
	if err != nil {
		return nil, err
	}
	if obligation.Status != domain.ObligationActive {
		return nil, fmt.Errorf("obligation %s is %s, settlement requires an active obligation: %w",
			obligationID, obligation.Status, apperrors.ErrState)
	}
	if !obligation.RemainingAmount.IsPositive() {
		return nil, fmt.Errorf("obligation %s has nothing left to pay: %w", obligationID, apperrors.ErrState)
	}
	return s.RecordPayment(ctx, ownerID, obligationID, dto.RecordPaymentRequest{
		Amount: obligation.RemainingAmount,
		Notes:  "Settled in full",
	})
}

// UpdateObligation changes entity name, notes or status. The amount fields
// move only through payment recording. The only status an update may set is
// CANCELLED, and only from ACTIVE.
func (s *obligationService) UpdateObligation(ctx context.Context, ownerID string, obligationID string, req dto.UpdateObligationRequest) (*domain.Obligation, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	obligation, err := s.obligationRepo.FindObligationByID(ctx, ownerID, obligationID)
	if err != nil {
		return nil, err
	}

	if req.EntityName != nil {
		if *req.EntityName == "" {
			return nil, fmt.Errorf("entity name must not be empty: %w", apperrors.ErrValidation)
		}
		obligation.EntityName = *req.EntityName
	}
	if req.Notes != nil {
		obligation.Notes = *req.Notes
	}
	if req.Status != nil && *req.Status != obligation.Status {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid obligation status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		if obligation.Status != domain.ObligationActive || *req.Status != domain.ObligationCancelled {
			return nil, fmt.Errorf("obligation status can only move from %s to %s: %w",
				domain.ObligationActive, domain.ObligationCancelled, apperrors.ErrState)
		}
		obligation.Status = domain.ObligationCancelled
	}
	obligation.UpdatedAt = time.Now()

	if err := s.obligationRepo.UpdateObligation(ctx, *obligation); err != nil {
		s.LogError(ctx, err, "Failed to update obligation", slog.String("obligation_id", obligationID))
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}
	return obligation, nil
}

// DeleteObligation removes the record permanently. The originating and
// payment transactions remain in the ledger untouched.
func (s *obligationService) DeleteObligation(ctx context.Context, ownerID string, obligationID string) error {
	if err := s.RequireOwner(ownerID); err != nil {
		return err
	}
	if err := s.obligationRepo.DeleteObligation(ctx, ownerID, obligationID); err != nil {
		s.LogError(ctx, err, "Failed to delete obligation", slog.String("obligation_id", obligationID))
		return err
	}
	s.LogInfo(ctx, "Obligation deleted", slog.String("obligation_id", obligationID))
	return nil
}

// createPaymentTransaction books the payment against the account of the
// originating transaction. A borrowing repayment is money out, a lending
// repayment is money in. The payment category comes from settings when
// configured, otherwise from the originating transaction itself.
func (s *obligationService) createPaymentTransaction(ctx context.Context, ownerID string, obligation *domain.Obligation, req dto.RecordPaymentRequest) (*domain.Transaction, error) {
	origin, err := s.txnSvc.GetTransactionByID(ctx, ownerID, obligation.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load originating transaction %s: %w", obligation.TransactionID, err)
	}

	classification, err := s.settingsSvc.Classification(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve classification settings: %w", err)
	}
	// Prefer the configured payment category; without one the payment reuses
	// the originating transaction's own category.
	categoryID, ok := classification.PaymentCategory(obligation.Type)
	if !ok {
		if origin.CategoryID == nil {
			return nil, fmt.Errorf("no payment category configured for %s obligations and the originating transaction has no category: %w",
				obligation.Type, apperrors.ErrState)
		}
		categoryID = *origin.CategoryID
	}

	amount := req.Amount
	txnType := domain.TxnIncome
	description := fmt.Sprintf("Repayment from @%s", obligation.EntityName)
	if obligation.Type == domain.Borrowing {
		amount = req.Amount.Neg()
		txnType = domain.TxnExpense
		description = fmt.Sprintf("Repayment to @%s", obligation.EntityName)
	}
	if req.Notes != "" {
		description = fmt.Sprintf("%s %s", description, req.Notes)
	}

	payment, err := s.txnSvc.CreateTransaction(ctx, ownerID, dto.CreateTransactionRequest{
		AccountID:    origin.AccountID,
		CategoryID:   &categoryID,
		Date:         dto.FlexDate{Time: time.Now()},
		Amount:       &amount,
		CurrencyCode: obligation.CurrencyCode,
		Description:  description,
		Type:         txnType,
		Status:       domain.TxnCleared,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment transaction: %w", err)
	}
	return payment, nil
}

func buildObligationFilter(params dto.ListObligationsParams) (portsrepo.ListObligationsFilter, error) {
	filter := portsrepo.ListObligationsFilter{EntityName: params.EntityName}
	if params.Type != nil {
		if !params.Type.IsValid() {
			return filter, fmt.Errorf("invalid obligation type %q: %w", *params.Type, apperrors.ErrValidation)
		}
		filter.Type = params.Type
	}
	if params.Status != nil {
		if !params.Status.IsValid() {
			return filter, fmt.Errorf("invalid obligation status %q: %w", *params.Status, apperrors.ErrValidation)
		}
		filter.Status = params.Status
	}
	return filter, nil
}
