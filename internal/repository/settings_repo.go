package repository

import (
	"context"
	"errors"
	"fmt"

	"hostel_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// SettingsRepository defines operations for the admin settings singleton
type SettingsRepository interface {
	Get(ctx context.Context) (*model.AdminSettings, error)
	Upsert(ctx context.Context, req model.UpdateSettingsRequest) (*model.AdminSettings, error)
}

type settingsRepository struct {
	db DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the settings row, or nil if none exists yet
func (r *settingsRepository) Get(ctx context.Context) (*model.AdminSettings, error) {
	settings := &model.AdminSettings{}
	sql := `SELECT id, upi_id FROM admin_settings LIMIT 1`
	err := r.db.QueryRow(ctx, sql).Scan(&settings.ID, &settings.UpiID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No settings saved yet
		}
		return nil, fmt.Errorf("failed to get admin settings: %w", err)
	}
	return settings, nil
}

// Upsert writes the singleton row in one statement. The unique singleton
// marker keeps concurrent upserts from creating a second row.
func (r *settingsRepository) Upsert(ctx context.Context, req model.UpdateSettingsRequest) (*model.AdminSettings, error) {
	settings := &model.AdminSettings{}
	sql := `INSERT INTO admin_settings (upi_id)
            VALUES ($1)
            ON CONFLICT (singleton) DO UPDATE SET upi_id = EXCLUDED.upi_id
            RETURNING id, upi_id`
	err := r.db.QueryRow(ctx, sql, req.UpiID).Scan(&settings.ID, &settings.UpiID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert admin settings: %w", err)
	}
	return settings, nil
}
