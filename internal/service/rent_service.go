package service

import (
	"context"
	"errors"
	"fmt"

	"hostel_manager/internal/model"
	"hostel_manager/internal/repository"
)

var ErrRentNotFound = errors.New("rent record not found")

// RentService defines rent demand operations
type RentService interface {
	CreateRent(ctx context.Context, req model.CreateRentRequest) (*model.RentRecord, error)
	ListRentFor(ctx context.Context, userID int, role string) ([]model.RentRecord, error)
	MarkPaid(ctx context.Context, id int64, actorID int, actorRole string) (*model.RentRecord, error)
}

type rentService struct {
	rentRepo repository.RentRepository
	userRepo repository.UserRepository
}

// NewRentService creates a new RentService
func NewRentService(rentRepo repository.RentRepository, userRepo repository.UserRepository) RentService {
	return &rentService{rentRepo: rentRepo, userRepo: userRepo}
}

// CreateRent raises a new demand against a student
func (s *rentService) CreateRent(ctx context.Context, req model.CreateRentRequest) (*model.RentRecord, error) {
	student, err := s.userRepo.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check student for rent demand: %w", err)
	}
	if student == nil {
		return nil, ErrUserNotFound
	}

	status := req.Status
	if status == "" {
		status = model.RentStatusUnpaid
	}

	rent := &model.RentRecord{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Status:    status,
		Month:     req.Month,
	}
	if err := s.rentRepo.Create(ctx, rent); err != nil {
		return nil, fmt.Errorf("failed to create rent record in repo: %w", err)
	}
	return rent, nil
}

// ListRentFor returns all records for an admin, only the caller's own
// records for a student. Newest first either way.
func (s *rentService) ListRentFor(ctx context.Context, userID int, role string) ([]model.RentRecord, error) {
	if role == model.RoleAdmin {
		records, err := s.rentRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list rent records: %w", err)
		}
		return records, nil
	}
	records, err := s.rentRepo.FindByStudent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rent records for student: %w", err)
	}
	return records, nil
}

// MarkPaid marks a demand as settled. Admins may settle any record;
// students only their own.
func (s *rentService) MarkPaid(ctx context.Context, id int64, actorID int, actorRole string) (*model.RentRecord, error) {
	existing, err := s.rentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find rent record: %w", err)
	}
	if existing == nil {
		return nil, ErrRentNotFound
	}
	if actorRole != model.RoleAdmin && existing.StudentID != actorID {
		return nil, ErrForbidden
	}

	updated, err := s.rentRepo.MarkPaid(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to mark rent paid: %w", err)
	}
	if updated == nil {
		return nil, ErrRentNotFound
	}
	return updated, nil
}
