package dto

import (
	"time"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string               `json:"name" binding:"required"`
	AccountType    domain.AccountType   `json:"accountType" binding:"required,oneof=CHECKING SAVINGS CREDIT INVESTMENT CASH BANK"`
	CurrencyCode   string               `json:"currencyCode" binding:"required,currencycode"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Status         domain.AccountStatus `json:"status" binding:"omitempty,oneof=ACTIVE CLOSED SUSPENDED"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Currency and opening balance changes are rejected once the account has live
// transactions.
type UpdateAccountRequest struct {
	Name           *string               `json:"name"`
	AccountType    *domain.AccountType   `json:"accountType"`
	CurrencyCode   *string               `json:"currencyCode"`
	OpeningBalance *decimal.Decimal      `json:"openingBalance"`
	Status         *domain.AccountStatus `json:"status"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Status   *domain.AccountStatus `form:"status"`
	Type     *domain.AccountType   `form:"type"`
	Currency *string               `form:"currency"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string               `json:"accountID"`
	Name           string               `json:"name"`
	AccountType    domain.AccountType   `json:"accountType"`
	CurrencyCode   string               `json:"currencyCode"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	Status         domain.AccountStatus `json:"status"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		CurrencyCode:   acc.CurrencyCode,
		OpeningBalance: acc.OpeningBalance,
		Status:         acc.Status,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	Account AccountResponse `json:"account"`
	Balance decimal.Decimal `json:"balance"`
	AsOf    time.Time       `json:"asOf"`
}

// ToAccountBalanceResponse converts a domain.AccountBalance to its DTO.
func ToAccountBalanceResponse(b *domain.AccountBalance) AccountBalanceResponse {
	return AccountBalanceResponse{
		Account: ToAccountResponse(&b.Account),
		Balance: b.Balance,
		AsOf:    b.AsOf,
	}
}
