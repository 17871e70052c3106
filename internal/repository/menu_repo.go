package repository

import (
	"context"
	"fmt"

	"hostel_manager/internal/model"
)

// MenuRepository defines operations for the weekly meal menu
type MenuRepository interface {
	FindAll(ctx context.Context) ([]model.MenuItem, error)
	Upsert(ctx context.Context, req model.UpsertMenuRequest) (*model.MenuItem, error)
}

type menuRepository struct {
	db DB
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db DB) MenuRepository {
	return &menuRepository{db: db}
}

// FindAll retrieves the full menu
func (r *menuRepository) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	sql := `SELECT id, day, breakfast, lunch, dinner FROM menu_items ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Day, &m.Breakfast, &m.Lunch, &m.Dinner); err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		items = append(items, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu rows: %w", err)
	}
	return items, nil
}

// Upsert writes the menu for a day in one statement. The unique constraint
// on day makes concurrent upserts for the same day converge on one row.
func (r *menuRepository) Upsert(ctx context.Context, req model.UpsertMenuRequest) (*model.MenuItem, error) {
	item := &model.MenuItem{}
	sql := `INSERT INTO menu_items (day, breakfast, lunch, dinner)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (day) DO UPDATE SET breakfast = EXCLUDED.breakfast, lunch = EXCLUDED.lunch, dinner = EXCLUDED.dinner
            RETURNING id, day, breakfast, lunch, dinner`
	err := r.db.QueryRow(ctx, sql, req.Day, req.Breakfast, req.Lunch, req.Dinner).
		Scan(&item.ID, &item.Day, &item.Breakfast, &item.Lunch, &item.Dinner)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert menu item: %w", err)
	}
	return item, nil
}
