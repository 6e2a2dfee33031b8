package usecasecontract

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

type ICategoryUseCase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, name string) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type ISettingUseCase interface {
	ListSettings(ctx context.Context) ([]*entity.SystemSetting, error)
	UpdateSetting(ctx context.Context, id, value string) (*entity.SystemSetting, error)
}

type IAdminUseCase interface {
	GetStats(ctx context.Context) (*entity.DashboardStats, error)
	GetEventCategoryCounts(ctx context.Context) ([]entity.CategoryCount, error)
	GetEventMonthCounts(ctx context.Context) ([]entity.MonthCount, error)
}
