package dto

import "github.com/sumitgupta24/eventxpert-backend/internal/domain/entity"

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func ToCategoryResponses(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

type SettingRequest struct {
	SettingValue string `json:"settingValue"`
}

type SettingResponse struct {
	ID           string `json:"_id"`
	SettingName  string `json:"settingName"`
	SettingValue string `json:"settingValue"`
}

func ToSettingResponse(s *entity.SystemSetting) SettingResponse {
	return SettingResponse{ID: s.ID, SettingName: s.SettingName, SettingValue: s.SettingValue}
}

func ToSettingResponses(settings []*entity.SystemSetting) []SettingResponse {
	out := make([]SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, ToSettingResponse(s))
	}
	return out
}
