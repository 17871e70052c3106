package service

import (
	"context"
	"fmt"

	"hostel_manager/internal/model"
	"hostel_manager/internal/repository"
)

// SettingsService defines payment settings operations
type SettingsService interface {
	GetSettings(ctx context.Context) (*model.AdminSettings, error)
	UpdateSettings(ctx context.Context, req model.UpdateSettingsRequest) (*model.AdminSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the settings row, or nil when none has been saved
func (s *settingsService) GetSettings(ctx context.Context) (*model.AdminSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req model.UpdateSettingsRequest) (*model.AdminSettings, error) {
	settings, err := s.settingsRepo.Upsert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return settings, nil
}
