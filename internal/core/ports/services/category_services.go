package services

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
	"github.com/pledgerhq/pledger_backend/internal/dto"
)

// CategorySvcFacade manages transaction categories.
type CategorySvcFacade interface {
	// CreateCategory validates and persists a new category.
	CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error)

	// GetCategoryByID retrieves a category owned by the caller.
	GetCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error)

	// ListCategories retrieves the owner's categories.
	ListCategories(ctx context.Context, ownerID string, includeInactive bool) ([]domain.Category, error)

	// UpdateCategory updates name, type or active flag.
	UpdateCategory(ctx context.Context, ownerID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeactivateCategory marks a category inactive; existing transactions keep it.
	DeactivateCategory(ctx context.Context, ownerID string, categoryID string) error
}
