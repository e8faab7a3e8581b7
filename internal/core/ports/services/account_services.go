package services

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/pledgerhq/pledger_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account owned by the caller.
	GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the owner's accounts, filterable by status, type and currency.
	ListAccounts(ctx context.Context, ownerID string, params dto.ListAccountsParams) ([]domain.Account, error)

	// GetAccountBalance returns the account alongside its computed current
	// balance and the time of computation.
	GetAccountBalance(ctx context.Context, ownerID string, accountID string) (*domain.AccountBalance, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new account.
	CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an account, rejecting currency or opening-balance
	// changes once any live transaction references it.
	UpdateAccount(ctx context.Context, ownerID string, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account that has no live transactions.
	DeleteAccount(ctx context.Context, ownerID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
