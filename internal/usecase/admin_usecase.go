package usecase

import (
	"context"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

// AdminUsecase serves the dashboard aggregates.
type AdminUsecase struct {
	userRepo     contract.IUserRepository
	eventRepo    contract.IEventRepository
	categoryRepo contract.ICategoryRepository
}

func NewAdminUsecase(userRepo contract.IUserRepository, eventRepo contract.IEventRepository, categoryRepo contract.ICategoryRepository) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo, eventRepo: eventRepo, categoryRepo: categoryRepo}
}

var _ usecasecontract.IAdminUseCase = (*AdminUsecase)(nil)

func (uc *AdminUsecase) GetStats(ctx context.Context) (*entity.DashboardStats, error) {
	var (
		stats    entity.DashboardStats
		err      error
		approved = true
		pending  = false
	)
	if stats.TotalUsers, err = uc.userRepo.CountUsers(ctx); err != nil {
		return nil, storageError("count users", err)
	}
	if stats.TotalEvents, err = uc.eventRepo.CountEvents(ctx, nil); err != nil {
		return nil, storageError("count events", err)
	}
	if stats.TotalCategories, err = uc.categoryRepo.CountCategories(ctx); err != nil {
		return nil, storageError("count categories", err)
	}
	if stats.PendingEvents, err = uc.eventRepo.CountEvents(ctx, &pending); err != nil {
		return nil, storageError("count pending events", err)
	}
	if stats.ApprovedEvents, err = uc.eventRepo.CountEvents(ctx, &approved); err != nil {
		return nil, storageError("count approved events", err)
	}
	return &stats, nil
}

func (uc *AdminUsecase) GetEventCategoryCounts(ctx context.Context) ([]entity.CategoryCount, error) {
	counts, err := uc.eventRepo.CountByCategory(ctx)
	if err != nil {
		return nil, storageError("count by category", err)
	}
	if counts == nil {
		counts = []entity.CategoryCount{}
	}
	return counts, nil
}

// GetEventMonthCounts returns event counts per YYYY-MM, oldest first.
func (uc *AdminUsecase) GetEventMonthCounts(ctx context.Context) ([]entity.MonthCount, error) {
	counts, err := uc.eventRepo.CountByMonth(ctx)
	if err != nil {
		return nil, storageError("count by month", err)
	}
	if counts == nil {
		counts = []entity.MonthCount{}
	}
	return counts, nil
}
