package contract

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

type ICategoryRepository interface {
	CreateCategory(ctx context.Context, category *entity.Category) error
	GetCategoryByID(ctx context.Context, id string) (*entity.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*entity.Category, error)
	GetAllCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, categories []*entity.Category) error
	CountCategories(ctx context.Context) (int64, error)
}

type ISettingRepository interface {
	GetAllSettings(ctx context.Context) ([]*entity.SystemSetting, error)
	GetSettingByID(ctx context.Context, id string) (*entity.SystemSetting, error)
	UpdateSettingValue(ctx context.Context, id string, value string) (*entity.SystemSetting, error)
	// UpsertSetting creates the named setting if it does not exist yet.
	UpsertSetting(ctx context.Context, setting *entity.SystemSetting) error
}
