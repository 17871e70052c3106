package service

import (
	"context"
	"fmt"

	"hostel_manager/internal/model"
	"hostel_manager/internal/repository"
	"hostel_manager/internal/utils"

	"github.com/sirupsen/logrus"
)

// Bootstrap seeds an empty database with a working data set: one admin,
// two students, a full week of menus, one rent demand, one notification
// and the payment settings.
type Bootstrap struct {
	userRepo     repository.UserRepository
	rentRepo     repository.RentRepository
	menuRepo     repository.MenuRepository
	noteRepo     repository.NotificationRepository
	settingsRepo repository.SettingsRepository
}

// NewBootstrap creates a new Bootstrap
func NewBootstrap(
	userRepo repository.UserRepository,
	rentRepo repository.RentRepository,
	menuRepo repository.MenuRepository,
	noteRepo repository.NotificationRepository,
	settingsRepo repository.SettingsRepository,
) *Bootstrap {
	return &Bootstrap{
		userRepo:     userRepo,
		rentRepo:     rentRepo,
		menuRepo:     menuRepo,
		noteRepo:     noteRepo,
		settingsRepo: settingsRepo,
	}
}

// Seed is idempotent: it does nothing unless the users table is empty
func (b *Bootstrap) Seed(ctx context.Context) error {
	count, err := b.userRepo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check seed guard: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminPass, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	studentPass, err := utils.HashPassword("student123")
	if err != nil {
		return fmt.Errorf("failed to hash student password: %w", err)
	}

	admin := &model.User{
		Username:   "admin",
		Password:   adminPass,
		Role:       model.RoleAdmin,
		Name:       "Hanumant Admin",
		RoomNumber: strPtr("Office"),
		Mobile:     strPtr("9999999999"),
	}
	if err := b.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	rahul := &model.User{
		Username:    "rahul",
		Password:    studentPass,
		Role:        model.RoleStudent,
		Name:        "Rahul Kumar",
		RoomNumber:  strPtr("101"),
		SharingType: strPtr(model.SharingSix),
		Mobile:      strPtr("9876543210"),
	}
	if err := b.userRepo.Create(ctx, rahul); err != nil {
		return fmt.Errorf("failed to seed student: %w", err)
	}

	amit := &model.User{
		Username:    "amit",
		Password:    studentPass,
		Role:        model.RoleStudent,
		Name:        "Amit Sharma",
		RoomNumber:  strPtr("102"),
		SharingType: strPtr(model.SharingThree),
		Mobile:      strPtr("9876543211"),
	}
	if err := b.userRepo.Create(ctx, amit); err != nil {
		return fmt.Errorf("failed to seed student: %w", err)
	}

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for _, day := range days {
		_, err := b.menuRepo.Upsert(ctx, model.UpsertMenuRequest{
			Day:       day,
			Breakfast: strPtr("Poha, Tea"),
			Lunch:     strPtr("Dal, Rice, Roti, Sabzi"),
			Dinner:    strPtr("Khichdi, Kadhi"),
		})
		if err != nil {
			return fmt.Errorf("failed to seed menu for %s: %w", day, err)
		}
	}

	rent := &model.RentRecord{
		StudentID: rahul.ID,
		Amount:    8500,
		Status:    model.RentStatusUnpaid,
		Month:     "October 2023",
	}
	if err := b.rentRepo.Create(ctx, rent); err != nil {
		return fmt.Errorf("failed to seed rent record: %w", err)
	}

	note := &model.Notification{Message: "Welcome to Hanumant Hostel! Please pay your rent by 5th."}
	if err := b.noteRepo.Create(ctx, note); err != nil {
		return fmt.Errorf("failed to seed notification: %w", err)
	}

	if _, err := b.settingsRepo.Upsert(ctx, model.UpdateSettingsRequest{UpiID: strPtr("hanumant@upi")}); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	logrus.Info("Database seeded")
	return nil
}

func strPtr(s string) *string {
	return &s
}
