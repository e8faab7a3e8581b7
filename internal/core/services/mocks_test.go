package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	"github.com/pledgerhq/pledger_backend/internal/dto"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, ownerID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, ownerID, accountIDs)
	var accounts map[string]domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).(map[string]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, ownerID string, filter portsrepo.ListAccountsFilter) ([]domain.Account, error) {
	args := m.Called(ctx, ownerID, filter)
	var accounts []domain.Account
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) HasLiveTransactions(ctx context.Context, ownerID string, accountID string) (bool, error) {
	args := m.Called(ctx, ownerID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, ownerID string, accountID string) error {
	args := m.Called(ctx, ownerID, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) CalculateBalance(ctx context.Context, ownerID string, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransferClosure(ctx context.Context, ownerID string, transactionIDs []string) ([]string, error) {
	args := m.Called(ctx, ownerID, transactionIDs)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockTransactionRepository) CreateTransactionValidated(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, txn)
	var created *domain.Transaction
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Transaction)
	}
	return created, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransfer(ctx context.Context, out domain.Transaction, in domain.Transaction) error {
	args := m.Called(ctx, out, in)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	args := m.Called(ctx, txns)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) SoftDeleteTransactions(ctx context.Context, ownerID string, transactionIDs []string, deletedAt time.Time) ([]string, error) {
	args := m.Called(ctx, ownerID, transactionIDs, deletedAt)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

// --- Mock CategoryRepository ---

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, ownerID, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoriesByIDs(ctx context.Context, ownerID string, categoryIDs []string) (map[string]domain.Category, error) {
	args := m.Called(ctx, ownerID, categoryIDs)
	var categories map[string]domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).(map[string]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, ownerID string, includeInactive bool) ([]domain.Category, error) {
	args := m.Called(ctx, ownerID, includeInactive)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Mock ObligationRepository ---

type MockObligationRepository struct {
	mock.Mock
}

func (m *MockObligationRepository) FindObligationByID(ctx context.Context, ownerID string, obligationID string) (*domain.Obligation, error) {
	args := m.Called(ctx, ownerID, obligationID)
	var obligation *domain.Obligation
	if args.Get(0) != nil {
		obligation = args.Get(0).(*domain.Obligation)
	}
	return obligation, args.Error(1)
}

func (m *MockObligationRepository) ListObligations(ctx context.Context, ownerID string, filter portsrepo.ListObligationsFilter) ([]domain.Obligation, error) {
	args := m.Called(ctx, ownerID, filter)
	var obligations []domain.Obligation
	if args.Get(0) != nil {
		obligations = args.Get(0).([]domain.Obligation)
	}
	return obligations, args.Error(1)
}

func (m *MockObligationRepository) SaveObligation(ctx context.Context, obligation domain.Obligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) UpdateObligation(ctx context.Context, obligation domain.Obligation) error {
	args := m.Called(ctx, obligation)
	return args.Error(0)
}

func (m *MockObligationRepository) DeleteObligation(ctx context.Context, ownerID string, obligationID string) error {
	args := m.Called(ctx, ownerID, obligationID)
	return args.Error(0)
}

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettings(ctx context.Context, ownerID string) (domain.Settings, error) {
	args := m.Called(ctx, ownerID)
	var settings domain.Settings
	if args.Get(0) != nil {
		settings = args.Get(0).(domain.Settings)
	}
	return settings, args.Error(1)
}

func (m *MockSettingsRepository) UpsertSetting(ctx context.Context, ownerID string, key string, value string) error {
	args := m.Called(ctx, ownerID, key, value)
	return args.Error(0)
}

// --- Mock TransactionSvc (for obligation service tests) ---

type MockTransactionSvc struct {
	mock.Mock
}

func (m *MockTransactionSvc) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionSvc) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, params)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionSvc) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionSvc) CreateTransfer(ctx context.Context, ownerID string, req dto.CreateTransferRequest) (*dto.TransferResult, error) {
	args := m.Called(ctx, ownerID, req)
	var result *dto.TransferResult
	if args.Get(0) != nil {
		result = args.Get(0).(*dto.TransferResult)
	}
	return result, args.Error(1)
}

func (m *MockTransactionSvc) CreateTransactionsBatch(ctx context.Context, ownerID string, req dto.BatchCreateTransactionsRequest) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionSvc) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, req)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionSvc) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) ([]string, error) {
	args := m.Called(ctx, ownerID, transactionID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockTransactionSvc) DeleteTransactions(ctx context.Context, ownerID string, transactionIDs []string) (*dto.BulkDeleteResult, error) {
	args := m.Called(ctx, ownerID, transactionIDs)
	var result *dto.BulkDeleteResult
	if args.Get(0) != nil {
		result = args.Get(0).(*dto.BulkDeleteResult)
	}
	return result, args.Error(1)
}
