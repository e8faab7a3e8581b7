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

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, ownerID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("invalid category type %q: %w", req.Type, apperrors.ErrValidation)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: utils.GenerateID("cat"),
		OwnerID:    ownerID,
		Name:       req.Name,
		Type:       req.Type,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, ownerID string, categoryID string) (*domain.Category, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, ownerID string, includeInactive bool) ([]domain.Category, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListCategories(ctx, ownerID, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, ownerID string, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if err := s.RequireOwner(ownerID); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, ownerID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, fmt.Errorf("invalid category type %q: %w", *req.Type, apperrors.ErrValidation)
		}
		category.Type = *req.Type
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeactivateCategory(ctx context.Context, ownerID string, categoryID string) error {
	if err := s.RequireOwner(ownerID); err != nil {
		return err
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, ownerID, categoryID)
	if err != nil {
		return err
	}
	if !category.IsActive {
		return nil
	}
	category.IsActive = false
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to deactivate category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to deactivate category: %w", err)
	}
	s.LogInfo(ctx, "Category deactivated", slog.String("category_id", categoryID))
	return nil
}
