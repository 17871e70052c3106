package repository

import (
	"context"
	"fmt"

	"hostel_manager/internal/model"
)

// NotificationRepository defines operations for announcements
type NotificationRepository interface {
	Create(ctx context.Context, note *model.Notification) error
	FindAll(ctx context.Context) ([]model.Notification, error)
}

type notificationRepository struct {
	db DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create appends a new announcement; created_at is assigned by the database
func (r *notificationRepository) Create(ctx context.Context, note *model.Notification) error {
	sql := `INSERT INTO notifications (message) VALUES ($1) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, note.Message).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// FindAll retrieves announcements, newest first
func (r *notificationRepository) FindAll(ctx context.Context) ([]model.Notification, error) {
	sql := `SELECT id, message, created_at FROM notifications ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notes []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notes, nil
}
