package usecase

import (
	"context"
	"errors"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
	"github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"
	usecasecontract "github.com/sumitgupta24/eventxpert-backend/internal/usecase/contract"
)

type SettingUsecase struct {
	settingRepo contract.ISettingRepository
}

func NewSettingUsecase(settingRepo contract.ISettingRepository) *SettingUsecase {
	return &SettingUsecase{settingRepo: settingRepo}
}

var _ usecasecontract.ISettingUseCase = (*SettingUsecase)(nil)

func (uc *SettingUsecase) ListSettings(ctx context.Context) ([]*entity.SystemSetting, error) {
	settings, err := uc.settingRepo.GetAllSettings(ctx)
	if err != nil {
		return nil, storageError("list settings", err)
	}
	return settings, nil
}

// UpdateSetting overwrites a setting's value. Values are free text; an empty
// value keeps the current one.
func (uc *SettingUsecase) UpdateSetting(ctx context.Context, id, value string) (*entity.SystemSetting, error) {
	var (
		setting *entity.SystemSetting
		err     error
	)
	if value == "" {
		setting, err = uc.settingRepo.GetSettingByID(ctx, id)
	} else {
		setting, err = uc.settingRepo.UpdateSettingValue(ctx, id, value)
	}
	if err != nil {
		if errors.Is(err, contract.ErrDocumentNotFound) {
			return nil, newError(ErrSettingNotFound, "Setting not found")
		}
		return nil, storageError("update setting", err)
	}
	return setting, nil
}
