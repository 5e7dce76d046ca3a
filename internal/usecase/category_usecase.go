package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
	"mentorhub/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

type CreateCategoryInput struct {
	Name          string
	SubCategories []string
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal("Failed to load categories", err)
	}
	return categories, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Category", err)
	}
	return category, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("Category name is required", nil)
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, name := range input.SubCategories {
		if strings.TrimSpace(name) == "" {
			continue
		}
		category.SubCategories = append(category.SubCategories, entity.SubCategory{
			ID:   uuid.New().String(),
			Name: name,
		})
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Internal("Failed to create category", err)
	}
	return category, nil
}

func (uc *CategoryUseCase) AddSubCategory(ctx context.Context, categoryID, name string) (*entity.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.BadRequest("Subcategory name is required", nil)
	}

	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, errors.NotFound("Category", err)
	}

	category.SubCategories = append(category.SubCategories, entity.SubCategory{
		ID:   uuid.New().String(),
		Name: name,
	})
	category.UpdatedAt = time.Now()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Internal("Failed to update category", err)
	}
	return category, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Category", err)
	}
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return errors.Internal("Failed to delete category", err)
	}
	return nil
}
