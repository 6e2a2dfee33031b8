package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
)

var defaultCategories = []string{"Technology", "Cultural", "Sports", "Academic", "Workshop", "Seminar"}

var defaultSettings = map[string]string{
	"siteName":         "EventXpert",
	"registrationOpen": "true",
}

type seeder struct {
	categories contract.ICategoryRepository
	settings   contract.ISettingRepository
	ids        contract.IUUIDGenerator
	now        func() time.Time
}

// importData replaces the categories and adds any missing default setting.
func (s *seeder) importData(ctx context.Context) (int, int, error) {
	now := s.now().UTC()

	categories := make([]*entity.Category, 0, len(defaultCategories))
	for _, name := range defaultCategories {
		categories = append(categories, &entity.Category{ID: s.ids.NewUUID(), Name: name, CreatedAt: now, UpdatedAt: now})
	}
	if err := s.categories.ReplaceAll(ctx, categories); err != nil {
		return 0, 0, fmt.Errorf("seed categories: %w", err)
	}

	names := make([]string, 0, len(defaultSettings))
	for name := range defaultSettings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		setting := &entity.SystemSetting{ID: s.ids.NewUUID(), SettingName: name, SettingValue: defaultSettings[name], CreatedAt: now, UpdatedAt: now}
		if err := s.settings.UpsertSetting(ctx, setting); err != nil {
			return 0, 0, fmt.Errorf("seed setting %s: %w", name, err)
		}
	}
	return len(categories), len(names), nil
}

// destroyData removes every category. Settings are left alone.
func (s *seeder) destroyData(ctx context.Context) error {
	if err := s.categories.ReplaceAll(ctx, nil); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}
