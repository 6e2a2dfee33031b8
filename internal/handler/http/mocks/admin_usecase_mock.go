package mocks

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// MockAdminUsecases implements the category, setting and stats usecases.
type MockAdminUsecases struct {
	Err        error
	Categories []*entity.Category
	Settings   []*entity.SystemSetting
	Stats      entity.DashboardStats
	ByCategory []entity.CategoryCount
	ByMonth    []entity.MonthCount
}

var (
	_ usecasecontract.ICategoryUseCase = (*MockAdminUsecases)(nil)
	_ usecasecontract.ISettingUseCase  = (*MockAdminUsecases)(nil)
	_ usecasecontract.IAdminUseCase    = (*MockAdminUsecases)(nil)
)

func (m *MockAdminUsecases) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return m.Categories, m.Err
}

func (m *MockAdminUsecases) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.Category{ID: "mock-category-id", Name: name}, nil
}

func (m *MockAdminUsecases) UpdateCategory(ctx context.Context, id, name string) (*entity.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.Category{ID: id, Name: name}, nil
}

func (m *MockAdminUsecases) DeleteCategory(ctx context.Context, id string) error {
	return m.Err
}

func (m *MockAdminUsecases) ListSettings(ctx context.Context) ([]*entity.SystemSetting, error) {
	return m.Settings, m.Err
}

func (m *MockAdminUsecases) UpdateSetting(ctx context.Context, id, value string) (*entity.SystemSetting, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return &entity.SystemSetting{ID: id, SettingName: "siteName", SettingValue: value}, nil
}

func (m *MockAdminUsecases) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	s := m.Stats
	return &s, nil
}

func (m *MockAdminUsecases) GetEventCategoryCounts(ctx context.Context) ([]entity.CategoryCount, error) {
	return m.ByCategory, m.Err
}

func (m *MockAdminUsecases) GetEventMonthCounts(ctx context.Context) ([]entity.MonthCount, error) {
	return m.ByMonth, m.Err
}
