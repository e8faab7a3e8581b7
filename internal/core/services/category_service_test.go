package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pledgerhq/pledger_backend/internal/apperrors"
	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
	"github.com/pledgerhq/pledger_backend/internal/core/services"
	"github.com/pledgerhq/pledger_backend/internal/dto"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.CategorySvcFacade
	ctx              context.Context
	ownerID          string
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockCategoryRepo)
	suite.ctx = context.Background()
	suite.ownerID = "owner-1"
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	req := dto.CreateCategoryRequest{Name: "Groceries", Type: domain.CategoryExpense}

	suite.mockCategoryRepo.On("SaveCategory", suite.ctx,
		mock.MatchedBy(func(c domain.Category) bool {
			return c.Name == "Groceries" && c.Type == domain.CategoryExpense && c.IsActive
		})).Return(nil).Once()

	category, err := suite.service.CreateCategory(suite.ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Contains(category.CategoryID, "cat_")
	suite.True(category.IsActive)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_InvalidType() {
	req := dto.CreateCategoryRequest{Name: "Misc", Type: domain.CategoryType("TRANSFER")}

	_, err := suite.service.CreateCategory(suite.ctx, suite.ownerID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestDeactivateCategory_Success() {
	category := &domain.Category{
		CategoryID: "cat-1",
		OwnerID:    suite.ownerID,
		Name:       "Groceries",
		Type:       domain.CategoryExpense,
		IsActive:   true,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.ownerID, "cat-1").
		Return(category, nil).Once()
	suite.mockCategoryRepo.On("UpdateCategory", suite.ctx,
		mock.MatchedBy(func(c domain.Category) bool {
			return !c.IsActive
		})).Return(nil).Once()

	err := suite.service.DeactivateCategory(suite.ctx, suite.ownerID, "cat-1")

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestDeactivateCategory_AlreadyInactiveIsIdempotent() {
	category := &domain.Category{
		CategoryID: "cat-1",
		OwnerID:    suite.ownerID,
		IsActive:   false,
	}

	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.ownerID, "cat-1").
		Return(category, nil).Once()

	err := suite.service.DeactivateCategory(suite.ctx, suite.ownerID, "cat-1")

	suite.Require().NoError(err)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "UpdateCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	suite.mockCategoryRepo.On("FindCategoryByID", suite.ctx, suite.ownerID, "cat-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateCategory(suite.ctx, suite.ownerID, "cat-missing",
		dto.UpdateCategoryRequest{Name: strPtr("Food")})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CategoryServiceTestSuite) TestListCategories_IncludeInactivePassthrough() {
	suite.mockCategoryRepo.On("ListCategories", suite.ctx, suite.ownerID, true).
		Return([]domain.Category{{CategoryID: "cat-1"}, {CategoryID: "cat-2"}}, nil).Once()

	categories, err := suite.service.ListCategories(suite.ctx, suite.ownerID, true)

	suite.Require().NoError(err)
	suite.Len(categories, 2)
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
