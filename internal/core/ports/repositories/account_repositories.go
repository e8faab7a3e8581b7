package repositories

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListAccountsFilter narrows an account listing. Nil fields are ignored.
type ListAccountsFilter struct {
	Status   *domain.AccountStatus
	Type     *domain.AccountType
	Currency *string
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account owned by ownerID.
	FindAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, ownerID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves the owner's accounts matching the filter.
	ListAccounts(ctx context.Context, ownerID string, filter ListAccountsFilter) ([]domain.Account, error)

	// HasLiveTransactions reports whether any non-deleted transaction references the account.
	HasLiveTransactions(ctx context.Context, ownerID string, accountID string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account row. Callers must have verified the
	// account has no live transactions.
	DeleteAccount(ctx context.Context, ownerID string, accountID string) error
}

// AccountCalculator delegates the monetary aggregation to the store-side
// balance function, seeded by the opening balance.
type AccountCalculator interface {
	// CalculateBalance sums live transaction amounts for the account on top of
	// its opening balance.
	CalculateBalance(ctx context.Context, ownerID string, accountID string) (decimal.Decimal, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountCalculator
}
