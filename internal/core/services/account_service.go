package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/dto"
	"github.com/pledgerhq/pledger_backend/internal/utils"
)

// accountService implements the AccountSvcFacade interface.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("invalid account type %q: %w", req.AccountType, apperrors.ErrValidation)
	}
	currency := utils.NormalizeCurrencyCode(req.CurrencyCode)
	if !utils.IsValidCurrencyCode(currency) {
		return nil, fmt.Errorf("invalid currency code %q: %w", req.CurrencyCode, apperrors.ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = domain.AccountActive
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid account status %q: %w", req.Status, apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      utils.GenerateID("acc"),
		OwnerID:        ownerID,
		Name:           req.Name,
		AccountType:    req.AccountType,
		CurrencyCode:   currency,
		OpeningBalance: req.OpeningBalance,
		Status:         status,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("currency", account.CurrencyCode))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, ownerID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, ownerID string, params dto.ListAccountsParams) ([]domain.Account, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if params.Status != nil && !params.Status.IsValid() {
		return nil, fmt.Errorf("invalid account status %q: %w", *params.Status, apperrors.ErrValidation)
	}
	if params.Type != nil && !params.Type.IsValid() {
		return nil, fmt.Errorf("invalid account type %q: %w", *params.Type, apperrors.ErrValidation)
	}
	filter := portsrepo.ListAccountsFilter{
		Status: params.Status,
		Type:   params.Type,
	}
	if params.Currency != nil {
		currency := utils.NormalizeCurrencyCode(*params.Currency)
		if !utils.IsValidCurrencyCode(currency) {
			return nil, fmt.Errorf("invalid currency code %q: %w", *params.Currency, apperrors.ErrValidation)
		}
		filter.Currency = &currency
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}

	// Currency and opening balance freeze once live transactions exist.
	wantsCurrencyChange := req.CurrencyCode != nil && utils.NormalizeCurrencyCode(*req.CurrencyCode) != account.CurrencyCode
	wantsOpeningChange := req.OpeningBalance != nil && !req.OpeningBalance.Equal(account.OpeningBalance)
	if wantsCurrencyChange || wantsOpeningChange {
		hasTxns, err := s.accountRepo.HasLiveTransactions(ctx, ownerID, accountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check live transactions", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to check live transactions: %w", err)
		}
		if hasTxns {
			return nil, fmt.Errorf("currency and opening balance are immutable once the account has transactions: %w", apperrors.ErrConflict)
		}
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		if !req.AccountType.IsValid() {
			return nil, fmt.Errorf("invalid account type %q: %w", *req.AccountType, apperrors.ErrValidation)
		}
		account.AccountType = *req.AccountType
	}
	if req.CurrencyCode != nil {
		currency := utils.NormalizeCurrencyCode(*req.CurrencyCode)
		if !utils.IsValidCurrencyCode(currency) {
			return nil, fmt.Errorf("invalid currency code %q: %w", *req.CurrencyCode, apperrors.ErrValidation)
		}
		account.CurrencyCode = currency
	}
	if req.OpeningBalance != nil {
		account.OpeningBalance = *req.OpeningBalance
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid account status %q: %w", *req.Status, apperrors.ErrValidation)
		}
		account.Status = *req.Status
	}
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, ownerID string, accountID string) error {
	if err := s.RequireOwner(ownerID); err != nil {
		return err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, ownerID, accountID); err != nil {
		return err
	}
	hasTxns, err := s.accountRepo.HasLiveTransactions(ctx, ownerID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check live transactions", slog.String("account_id", accountID))
		return fmt.Errorf("failed to check live transactions: %w", err)
	}
	if hasTxns {
		return fmt.Errorf("account has existing transactions: %w", apperrors.ErrConflict)
	}

	if err := s.accountRepo.DeleteAccount(ctx, ownerID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) GetAccountBalance(ctx context.Context, ownerID string, accountID string) (*domain.AccountBalance, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}
	balance, err := s.accountRepo.CalculateBalance(ctx, ownerID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to calculate balance", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to calculate balance: %w", err)
	}
	return &domain.AccountBalance{
		Account: *account,
		Balance: balance,
		AsOf:    time.Now(),
	}, nil
}
