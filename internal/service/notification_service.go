package service

import (
	"context"
	"fmt"

	"hostel_manager/internal/model"
	"hostel_manager/internal/repository"
)

// NotificationService defines announcement operations
type NotificationService interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	CreateNotification(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error)
}

type notificationService struct {
	noteRepo repository.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	notes, err := s.noteRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notes, nil
}

func (s *notificationService) CreateNotification(ctx context.Context, req model.CreateNotificationRequest) (*model.Notification, error) {
	note := &model.Notification{Message: req.Message}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return note, nil
}
