package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

const msgCategoryExists = "Category already exists"

type CategoryUsecase struct {
	categoryRepo contract.ICategoryRepository
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
}

func NewCategoryUsecase(categoryRepo contract.ICategoryRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, uuidgen: uuidgen, logger: logger}
}

var _ usecasecontract.ICategoryUseCase = (*CategoryUsecase)(nil)

func (uc *CategoryUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.GetAllCategories(ctx)
	if err != nil {
		return nil, storageError("list categories", err)
	}
	return categories, nil
}

// nameTaken reports whether name belongs to a category other than selfID.
func (uc *CategoryUsecase) nameTaken(ctx context.Context, name, selfID string) (bool, error) {
	existing, err := uc.categoryRepo.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return false, nil
		}
		return false, storageError("get category", err)
	}
	return existing.ID != selfID, nil
}

func (uc *CategoryUsecase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newError(ErrInvalidInput, "Category name is required")
	}
	taken, err := uc.nameTaken(ctx, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newError(ErrConflict, msgCategoryExists)
	}

	now := time.Now()
	category := &entity.Category{ID: uc.uuidgen.NewUUID(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := uc.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, newError(ErrConflict, msgCategoryExists)
		}
		uc.logger.Errorf("failed to create category: %v", err)
		return nil, storageError("create category", err)
	}
	return category, nil
}

// UpdateCategory renames a category. An empty name keeps the current one.
func (uc *CategoryUsecase) UpdateCategory(ctx context.Context, id, name string) (*entity.Category, error) {
	current, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, classify(err, ErrCategoryNotFound, "get category")
	}
	name = strings.TrimSpace(name)
	if name == "" || name == current.Name {
		return current, nil
	}
	taken, err := uc.nameTaken(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newError(ErrConflict, msgCategoryExists)
	}

	updated, err := uc.categoryRepo.UpdateCategory(ctx, id, name)
	if err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, newError(ErrConflict, msgCategoryExists)
		}
		return nil, classify(err, ErrCategoryNotFound, "update category")
	}
	return updated, nil
}

// DeleteCategory removes a category. Events keep the category name they were created with.
func (uc *CategoryUsecase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.categoryRepo.DeleteCategory(ctx, id); err != nil {
		return classify(err, ErrCategoryNotFound, "delete category")
	}
	return nil
}
