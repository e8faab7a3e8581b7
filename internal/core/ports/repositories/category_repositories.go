package repositories

import (
	"context"

	"github.com/pledgerhq/pledger_backend/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a category owned by ownerID.
	FindCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error)

	// FindCategoriesByIDs retrieves multiple categories by their IDs.
	FindCategoriesByIDs(ctx context.Context, ownerID string, categoryIDs []string) (map[string]domain.Category, error)

	// ListCategories retrieves the owner's categories, optionally including inactive ones.
	ListCategories(ctx context.Context, ownerID string, includeInactive bool) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category.
	UpdateCategory(ctx context.Context, category domain.Category) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
