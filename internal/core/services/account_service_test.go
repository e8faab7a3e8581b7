package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/core/services"
	"github.com/pledgerhq/pledger_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	ctx             context.Context
	ownerID         string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.ctx = context.Background()
	suite.ownerID = "owner-1"
}

func (suite *AccountServiceTestSuite) existingAccount() *domain.Account {
	return &domain.Account{
		AccountID:      "acc-1",
		OwnerID:        suite.ownerID,
		Name:           "Checking",
		AccountType:    domain.AccountChecking,
		CurrencyCode:   "USD",
		OpeningBalance: decimal.NewFromInt(1000),
		Status:         domain.AccountActive,
	}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{
		Name:           "Savings",
		AccountType:    domain.AccountSavings,
		CurrencyCode:   "eur",
		OpeningBalance: decimal.NewFromInt(500),
	}

	suite.mockAccountRepo.On("SaveAccount", suite.ctx,
		mock.MatchedBy(func(a domain.Account) bool {
			return a.Name == "Savings" &&
				a.CurrencyCode == "EUR" &&
				a.Status == domain.AccountActive &&
				a.OwnerID == suite.ownerID
		})).Return(nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Contains(account.AccountID, "acc_")
	suite.Equal("EUR", account.CurrencyCode)
	suite.Equal(domain.AccountActive, account.Status)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidCurrency() {
	req := dto.CreateAccountRequest{
		Name:         "Savings",
		AccountType:  domain.AccountSavings,
		CurrencyCode: "EURO",
	}

	account, err := suite.service.CreateAccount(suite.ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	req := dto.CreateAccountRequest{
		Name:         "Wallet",
		AccountType:  domain.AccountType("CRYPTO"),
		CurrencyCode: "USD",
	}

	_, err := suite.service.CreateAccount(suite.ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_CurrencyFrozenWithLiveTransactions() {
	account := suite.existingAccount()

	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.ownerID, "acc-1").
		Return(account, nil).Once()
	suite.mockAccountRepo.On("HasLiveTransactions", suite.ctx, suite.ownerID, "acc-1").
		Return(true, nil).Once()

	updated, err := suite.service.UpdateAccount(suite.ctx, suite.ownerID, "acc-1",
		dto.UpdateAccountRequest{CurrencyCode: strPtr("EUR")})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_CurrencyChangeAllowedWhenUnused() {
	account := suite.existingAccount()

	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.ownerID, "acc-1").
		Return(account, nil).Once()
	suite.mockAccountRepo.On("HasLiveTransactions", suite.ctx, suite.ownerID, "acc-1").
		Return(false, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", suite.ctx,
		mock.MatchedBy(func(a domain.Account) bool {
			return a.CurrencyCode == "EUR"
		})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(suite.ctx, suite.ownerID, "acc-1",
		dto.UpdateAccountRequest{CurrencyCode: strPtr("eur")})

	suite.Require().NoError(err)
	suite.Equal("EUR", updated.CurrencyCode)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NameChangeSkipsLiveCheck() {
	account := suite.existingAccount()

	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.ownerID, "acc-1").
		Return(account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", suite.ctx, mock.AnythingOfType("domain.Account")).
		Return(nil).Once()

	updated, err := suite.service.UpdateAccount(suite.ctx, suite.ownerID, "acc-1",
		dto.UpdateAccountRequest{Name: strPtr("Primary Checking")})

	suite.Require().NoError(err)
	suite.Equal("Primary Checking", updated.Name)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "HasLiveTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RejectedWithLiveTransactions() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.ownerID, "acc-1").
		Return(suite.existingAccount(), nil).Once()
	suite.mockAccountRepo.On("HasLiveTransactions", suite.ctx, suite.ownerID, "acc-1").
		Return(true, nil).Once()

	err := suite.service.DeleteAccount(suite.ctx, suite.ownerID, "acc-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.ownerID, "acc-1").
		Return(suite.existingAccount(), nil).Once()
	suite.mockAccountRepo.On("HasLiveTransactions", suite.ctx, suite.ownerID, "acc-1").
		Return(false, nil).Once()
	suite.mockAccountRepo.On("DeleteAccount", suite.ctx, suite.ownerID, "acc-1").
		Return(nil).Once()

	err := suite.service.DeleteAccount(suite.ctx, suite.ownerID, "acc-1")

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance() {
	account := suite.existingAccount()
	before := time.Now()

	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.ownerID, "acc-1").
		Return(account, nil).Once()
	suite.mockAccountRepo.On("CalculateBalance", suite.ctx, suite.ownerID, "acc-1").
		Return(decimal.NewFromInt(1250), nil).Once()

	balance, err := suite.service.GetAccountBalance(suite.ctx, suite.ownerID, "acc-1")

	suite.Require().NoError(err)
	suite.Equal("acc-1", balance.Account.AccountID)
	suite.True(balance.Balance.Equal(decimal.NewFromInt(1250)))
	suite.False(balance.AsOf.Before(before))
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_NotFound() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, suite.ownerID, "acc-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetAccountBalance(suite.ctx, suite.ownerID, "acc-missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "CalculateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_FilterPassthrough() {
	status := domain.AccountActive
	currency := "usd"

	suite.mockAccountRepo.On("ListAccounts", suite.ctx, suite.ownerID,
		mock.MatchedBy(func(f portsrepo.ListAccountsFilter) bool {
			return f.Status != nil && *f.Status == domain.AccountActive &&
				f.Currency != nil && *f.Currency == "USD"
		})).Return([]domain.Account{*suite.existingAccount()}, nil).Once()

	accounts, err := suite.service.ListAccounts(suite.ctx, suite.ownerID,
		dto.ListAccountsParams{Status: &status, Currency: &currency})

	suite.Require().NoError(err)
	suite.Len(accounts, 1)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
