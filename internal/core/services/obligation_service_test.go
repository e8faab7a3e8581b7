package services_test

import (
	"context"
	"testing"

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

// MockSettingsSvc stands in for the settings service facade.
type MockSettingsSvc struct {
	mock.Mock
}

func (m *MockSettingsSvc) GetSettings(ctx context.Context, ownerID string) (domain.Settings, error) {
	args := m.Called(ctx, ownerID)
	var settings domain.Settings
	if args.Get(0) != nil {
		settings = args.Get(0).(domain.Settings)
	}
	return settings, args.Error(1)
}

func (m *MockSettingsSvc) UpdateSetting(ctx context.Context, ownerID string, key string, value string) error {
	args := m.Called(ctx, ownerID, key, value)
	return args.Error(0)
}

func (m *MockSettingsSvc) Classification(ctx context.Context, ownerID string) (domain.Classification, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Classification), args.Error(1)
}

type ObligationServiceTestSuite struct {
	suite.Suite
	mockObligationRepo *MockObligationRepository
	mockTxnSvc         *MockTransactionSvc
	mockSettingsSvc    *MockSettingsSvc
	service            portssvc.ObligationSvcFacade
	ctx                context.Context
	ownerID            string
	classification     domain.Classification
}

func (suite *ObligationServiceTestSuite) SetupTest() {
	suite.mockObligationRepo = new(MockObligationRepository)
	suite.mockTxnSvc = new(MockTransactionSvc)
	suite.mockSettingsSvc = new(MockSettingsSvc)
	suite.service = services.NewObligationService(
		suite.mockObligationRepo, suite.mockTxnSvc, suite.mockSettingsSvc)
	suite.ctx = context.Background()
	suite.ownerID = "owner-1"
	suite.classification = domain.NewClassification(domain.Settings{
		domain.SettingBorrowingCategoryID:      "cat-borrow",
		domain.SettingLendingCategoryID:        "cat-lend",
		domain.SettingBorrowingPaymentCategory: "cat-borrow-pay",
		domain.SettingLendingPaymentCategory:   "cat-lend-pay",
	})
}

func (suite *ObligationServiceTestSuite) activeObligation() *domain.Obligation {
	return &domain.Obligation{
		ObligationID:    "obl-1",
		OwnerID:         suite.ownerID,
		Type:            domain.Borrowing,
		TransactionID:   "txn-origin",
		EntityName:      "John",
		CurrencyCode:    "USD",
		OriginalAmount:  decimal.NewFromInt(500),
		PaidAmount:      decimal.NewFromInt(100),
		RemainingAmount: decimal.NewFromInt(400),
		Status:          domain.ObligationActive,
	}
}

func (suite *ObligationServiceTestSuite) TestHandleTransactionCreated_BorrowingCategory() {
	categoryID := "cat-borrow"
	txn := domain.Transaction{
		TransactionID: "txn-1",
		OwnerID:       suite.ownerID,
		AccountID:     "acc-1",
		CategoryID:    &categoryID,
		Amount:        decimal.NewFromInt(500),
		CurrencyCode:  "USD",
		Description:   "loan from @John for rent",
		Type:          domain.TxnIncome,
	}

	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()
	suite.mockObligationRepo.On("SaveObligation", suite.ctx,
		mock.MatchedBy(func(o domain.Obligation) bool {
			return o.Type == domain.Borrowing &&
				o.EntityName == "John" &&
				o.TransactionID == "txn-1" &&
				o.OriginalAmount.Equal(decimal.NewFromInt(500)) &&
				o.PaidAmount.IsZero() &&
				o.RemainingAmount.Equal(decimal.NewFromInt(500)) &&
				o.Status == domain.ObligationActive &&
				o.Notes == "loan from for rent"
		})).Return(nil).Once()

	err := suite.service.HandleTransactionCreated(suite.ctx, txn)

	suite.Require().NoError(err)
	suite.mockObligationRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestHandleTransactionCreated_NegativeAmountStoredAbsolute() {
	categoryID := "cat-lend"
	txn := domain.Transaction{
		TransactionID: "txn-1",
		OwnerID:       suite.ownerID,
		CategoryID:    &categoryID,
		Amount:        decimal.NewFromInt(-250),
		CurrencyCode:  "USD",
		Description:   "@Maria",
		Type:          domain.TxnExpense,
	}

	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()
	suite.mockObligationRepo.On("SaveObligation", suite.ctx,
		mock.MatchedBy(func(o domain.Obligation) bool {
			return o.Type == domain.Lending &&
				o.EntityName == "Maria" &&
				o.OriginalAmount.Equal(decimal.NewFromInt(250))
		})).Return(nil).Once()

	err := suite.service.HandleTransactionCreated(suite.ctx, txn)

	suite.Require().NoError(err)
	suite.mockObligationRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestHandleTransactionCreated_UnclassifiedCategoryIsNoOp() {
	categoryID := "cat-groceries"
	txn := domain.Transaction{
		TransactionID: "txn-1",
		OwnerID:       suite.ownerID,
		CategoryID:    &categoryID,
		Amount:        decimal.NewFromInt(-20),
		Type:          domain.TxnExpense,
	}

	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()

	err := suite.service.HandleTransactionCreated(suite.ctx, txn)

	suite.Require().NoError(err)
	suite.mockObligationRepo.AssertNotCalled(suite.T(), "SaveObligation", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestHandleTransactionCreated_NoCategoryIsNoOp() {
	txn := domain.Transaction{
		TransactionID: "txn-1",
		OwnerID:       suite.ownerID,
		Amount:        decimal.NewFromInt(-20),
		Type:          domain.TxnTransferOut,
	}

	err := suite.service.HandleTransactionCreated(suite.ctx, txn)

	suite.Require().NoError(err)
	suite.mockSettingsSvc.AssertNotCalled(suite.T(), "Classification", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_Partial() {
	obligation := suite.activeObligation()
	origin := &domain.Transaction{
		TransactionID: "txn-origin",
		OwnerID:       suite.ownerID,
		AccountID:     "acc-1",
	}
	payment := &domain.Transaction{TransactionID: "txn-payment"}

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()
	suite.mockTxnSvc.On("GetTransactionByID", suite.ctx, suite.ownerID, "txn-origin").
		Return(origin, nil).Once()
	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()
	suite.mockTxnSvc.On("CreateTransaction", suite.ctx, suite.ownerID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			// A borrowing repayment is money out of the originating account,
			// booked against the configured payment category.
			return req.AccountID == "acc-1" &&
				req.CategoryID != nil && *req.CategoryID == "cat-borrow-pay" &&
				req.Amount.Equal(decimal.NewFromInt(-150)) &&
				req.Type == domain.TxnExpense &&
				req.Description == "Repayment to @John"
		})).Return(payment, nil).Once()
	suite.mockObligationRepo.On("UpdateObligation", suite.ctx,
		mock.MatchedBy(func(o domain.Obligation) bool {
			return o.PaidAmount.Equal(decimal.NewFromInt(250)) &&
				o.RemainingAmount.Equal(decimal.NewFromInt(250)) &&
				o.Status == domain.ObligationActive &&
				len(o.PaymentTransactionIDs) == 1 &&
				o.PaymentTransactionIDs[0] == "txn-payment"
		})).Return(nil).Once()

	updated, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(150)})

	suite.Require().NoError(err)
	suite.Equal(domain.ObligationActive, updated.Status)
	suite.mockObligationRepo.AssertExpectations(suite.T())
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_ZeroOutTransitionsToFullyPaid() {
	obligation := suite.activeObligation()
	origin := &domain.Transaction{TransactionID: "txn-origin", AccountID: "acc-1"}
	payment := &domain.Transaction{TransactionID: "txn-payment"}

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()
	suite.mockTxnSvc.On("GetTransactionByID", suite.ctx, suite.ownerID, "txn-origin").
		Return(origin, nil).Once()
	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()
	suite.mockTxnSvc.On("CreateTransaction", suite.ctx, suite.ownerID, mock.Anything).
		Return(payment, nil).Once()
	suite.mockObligationRepo.On("UpdateObligation", suite.ctx,
		mock.MatchedBy(func(o domain.Obligation) bool {
			return o.RemainingAmount.IsZero() && o.Status == domain.ObligationFullyPaid
		})).Return(nil).Once()

	updated, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(400)})

	suite.Require().NoError(err)
	suite.Equal(domain.ObligationFullyPaid, updated.Status)
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_LendingRepaymentIsIncome() {
	obligation := suite.activeObligation()
	obligation.Type = domain.Lending
	origin := &domain.Transaction{TransactionID: "txn-origin", AccountID: "acc-1"}
	payment := &domain.Transaction{TransactionID: "txn-payment"}

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()
	suite.mockTxnSvc.On("GetTransactionByID", suite.ctx, suite.ownerID, "txn-origin").
		Return(origin, nil).Once()
	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()
	suite.mockTxnSvc.On("CreateTransaction", suite.ctx, suite.ownerID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.CategoryID != nil && *req.CategoryID == "cat-lend-pay" &&
				req.Amount.Equal(decimal.NewFromInt(100)) &&
				req.Type == domain.TxnIncome &&
				req.Description == "Repayment from @John"
		})).Return(payment, nil).Once()
	suite.mockObligationRepo.On("UpdateObligation", suite.ctx, mock.Anything).
		Return(nil).Once()

	_, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(100)})

	suite.Require().NoError(err)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_OverpaymentSettles() {
	obligation := suite.activeObligation()
	origin := &domain.Transaction{TransactionID: "txn-origin", AccountID: "acc-1"}
	payment := &domain.Transaction{TransactionID: "txn-payment"}

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()
	suite.mockTxnSvc.On("GetTransactionByID", suite.ctx, suite.ownerID, "txn-origin").
		Return(origin, nil).Once()
	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()
	suite.mockTxnSvc.On("CreateTransaction", suite.ctx, suite.ownerID, mock.Anything).
		Return(payment, nil).Once()
	// Paying more than the remaining 400 is allowed and settles the record
	// with a negative remainder.
	suite.mockObligationRepo.On("UpdateObligation", suite.ctx,
		mock.MatchedBy(func(o domain.Obligation) bool {
			return o.PaidAmount.Equal(decimal.NewFromInt(550)) &&
				o.RemainingAmount.Equal(decimal.NewFromInt(-50)) &&
				o.Status == domain.ObligationFullyPaid
		})).Return(nil).Once()

	updated, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(450)})

	suite.Require().NoError(err)
	suite.Equal(domain.ObligationFullyPaid, updated.Status)
	suite.mockObligationRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_NotActive() {
	obligation := suite.activeObligation()
	obligation.Status = domain.ObligationCancelled

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()

	_, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrState)
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	_, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.Zero})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockObligationRepo.AssertNotCalled(suite.T(), "FindObligationByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_FallsBackToOriginCategory() {
	obligation := suite.activeObligation()
	originCategory := "cat-borrow"
	origin := &domain.Transaction{TransactionID: "txn-origin", AccountID: "acc-1", CategoryID: &originCategory}
	payment := &domain.Transaction{TransactionID: "txn-payment"}
	unconfigured := domain.NewClassification(domain.Settings{
		domain.SettingBorrowingCategoryID: "cat-borrow",
	})

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()
	suite.mockTxnSvc.On("GetTransactionByID", suite.ctx, suite.ownerID, "txn-origin").
		Return(origin, nil).Once()
	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(unconfigured, nil).Once()
	// Without a payment category the payment reuses the origin's category.
	suite.mockTxnSvc.On("CreateTransaction", suite.ctx, suite.ownerID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.CategoryID != nil && *req.CategoryID == "cat-borrow" &&
				req.Amount.Equal(decimal.NewFromInt(-10))
		})).Return(payment, nil).Once()
	suite.mockObligationRepo.On("UpdateObligation", suite.ctx, mock.Anything).
		Return(nil).Once()

	_, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10)})

	suite.Require().NoError(err)
	suite.mockTxnSvc.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestRecordPayment_NoCategoryAnywhere() {
	obligation := suite.activeObligation()
	origin := &domain.Transaction{TransactionID: "txn-origin", AccountID: "acc-1"}
	unconfigured := domain.NewClassification(domain.Settings{})

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()
	suite.mockTxnSvc.On("GetTransactionByID", suite.ctx, suite.ownerID, "txn-origin").
		Return(origin, nil).Once()
	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(unconfigured, nil).Once()

	_, err := suite.service.RecordPayment(suite.ctx, suite.ownerID, "obl-1",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10)})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrState)
	suite.mockTxnSvc.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestMarkAsFullyPaid_PaysRemaining() {
	obligation := suite.activeObligation()
	origin := &domain.Transaction{TransactionID: "txn-origin", AccountID: "acc-1"}
	payment := &domain.Transaction{TransactionID: "txn-payment"}

	// Loaded once by the settlement check, once by the payment itself.
	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Twice()
	suite.mockTxnSvc.On("GetTransactionByID", suite.ctx, suite.ownerID, "txn-origin").
		Return(origin, nil).Once()
	suite.mockSettingsSvc.On("Classification", suite.ctx, suite.ownerID).
		Return(suite.classification, nil).Once()
	suite.mockTxnSvc.On("CreateTransaction", suite.ctx, suite.ownerID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(-400)) &&
				req.Description == "Repayment to @John Settled in full"
		})).Return(payment, nil).Once()
	suite.mockObligationRepo.On("UpdateObligation", suite.ctx,
		mock.MatchedBy(func(o domain.Obligation) bool {
			return o.Status == domain.ObligationFullyPaid
		})).Return(nil).Once()

	updated, err := suite.service.MarkAsFullyPaid(suite.ctx, suite.ownerID, "obl-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ObligationFullyPaid, updated.Status)
	suite.mockObligationRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestMarkAsFullyPaid_NotActive() {
	obligation := suite.activeObligation()
	obligation.Status = domain.ObligationFullyPaid

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()

	_, err := suite.service.MarkAsFullyPaid(suite.ctx, suite.ownerID, "obl-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrState)
}

func (suite *ObligationServiceTestSuite) TestUpdateObligation_CancelActive() {
	obligation := suite.activeObligation()
	cancelled := domain.ObligationCancelled

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()
	suite.mockObligationRepo.On("UpdateObligation", suite.ctx,
		mock.MatchedBy(func(o domain.Obligation) bool {
			return o.Status == domain.ObligationCancelled
		})).Return(nil).Once()

	updated, err := suite.service.UpdateObligation(suite.ctx, suite.ownerID, "obl-1",
		dto.UpdateObligationRequest{Status: &cancelled})

	suite.Require().NoError(err)
	suite.Equal(domain.ObligationCancelled, updated.Status)
}

func (suite *ObligationServiceTestSuite) TestUpdateObligation_CannotReactivate() {
	obligation := suite.activeObligation()
	obligation.Status = domain.ObligationCancelled
	active := domain.ObligationActive

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()

	_, err := suite.service.UpdateObligation(suite.ctx, suite.ownerID, "obl-1",
		dto.UpdateObligationRequest{Status: &active})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrState)
	suite.mockObligationRepo.AssertNotCalled(suite.T(), "UpdateObligation", mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestUpdateObligation_EmptyEntityName() {
	obligation := suite.activeObligation()

	suite.mockObligationRepo.On("FindObligationByID", suite.ctx, suite.ownerID, "obl-1").
		Return(obligation, nil).Once()

	_, err := suite.service.UpdateObligation(suite.ctx, suite.ownerID, "obl-1",
		dto.UpdateObligationRequest{EntityName: strPtr("")})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ObligationServiceTestSuite) TestSummarize_GroupsAndSorts() {
	obligations := []domain.Obligation{
		{
			Type: domain.Lending, EntityName: "Maria", CurrencyCode: "USD",
			OriginalAmount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(40),
			RemainingAmount: decimal.NewFromInt(60),
		},
		{
			Type: domain.Borrowing, EntityName: "John", CurrencyCode: "USD",
			OriginalAmount: decimal.NewFromInt(500), PaidAmount: decimal.NewFromInt(100),
			RemainingAmount: decimal.NewFromInt(400),
		},
		{
			Type: domain.Borrowing, EntityName: "John", CurrencyCode: "USD",
			OriginalAmount: decimal.NewFromInt(200), PaidAmount: decimal.Zero,
			RemainingAmount: decimal.NewFromInt(200),
		},
	}

	suite.mockObligationRepo.On("ListObligations", suite.ctx, suite.ownerID,
		mock.AnythingOfType("repositories.ListObligationsFilter")).
		Return(obligations, nil).Once()

	summary, err := suite.service.Summarize(suite.ctx, suite.ownerID, dto.ListObligationsParams{})

	suite.Require().NoError(err)
	suite.Equal(3, summary.Count)
	suite.Require().Len(summary.Groups, 2)

	// BORROWING sorts before LENDING.
	john := summary.Groups[0]
	suite.Equal(domain.Borrowing, john.Type)
	suite.Equal("John", john.EntityName)
	suite.Equal(2, john.Count)
	suite.True(john.OriginalAmount.Equal(decimal.NewFromInt(700)))
	suite.True(john.PaidAmount.Equal(decimal.NewFromInt(100)))
	suite.True(john.RemainingAmount.Equal(decimal.NewFromInt(600)))

	maria := summary.Groups[1]
	suite.Equal(domain.Lending, maria.Type)
	suite.Equal(1, maria.Count)
}

func (suite *ObligationServiceTestSuite) TestListObligations_InvalidTypeRejected() {
	badType := domain.ObligationType("LOAN")

	_, err := suite.service.ListObligations(suite.ctx, suite.ownerID,
		dto.ListObligationsParams{Type: &badType})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockObligationRepo.AssertNotCalled(suite.T(), "ListObligations", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ObligationServiceTestSuite) TestListObligations_FilterPassthrough() {
	borrowing := domain.Borrowing
	entity := "John"

	suite.mockObligationRepo.On("ListObligations", suite.ctx, suite.ownerID,
		mock.MatchedBy(func(f portsrepo.ListObligationsFilter) bool {
			return f.Type != nil && *f.Type == domain.Borrowing &&
				f.EntityName != nil && *f.EntityName == "John"
		})).Return([]domain.Obligation{}, nil).Once()

	_, err := suite.service.ListObligations(suite.ctx, suite.ownerID,
		dto.ListObligationsParams{Type: &borrowing, EntityName: &entity})

	suite.Require().NoError(err)
	suite.mockObligationRepo.AssertExpectations(suite.T())
}

func (suite *ObligationServiceTestSuite) TestDeleteObligation() {
	suite.mockObligationRepo.On("DeleteObligation", suite.ctx, suite.ownerID, "obl-1").
		Return(nil).Once()

	err := suite.service.DeleteObligation(suite.ctx, suite.ownerID, "obl-1")

	suite.Require().NoError(err)
	suite.mockObligationRepo.AssertExpectations(suite.T())
}

func TestObligationService(t *testing.T) {
	suite.Run(t, new(ObligationServiceTestSuite))
}
