package service

import (
	"context"
	"errors"
	"fmt"

	"hostel_manager/internal/model"
	"hostel_manager/internal/repository"
	"hostel_manager/internal/utils"
)

var ErrForbidden = errors.New("forbidden: user does not have permission for this action")

// StudentService defines roster operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]model.User, error)
	UpdateStudent(ctx context.Context, targetID, actorID int, actorRole string, req model.UpdateUserRequest) (*model.User, error)
	DeleteStudent(ctx context.Context, id int) error
}

type studentService struct {
	userRepo repository.UserRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(userRepo repository.UserRepository) StudentService {
	return &studentService{userRepo: userRepo}
}

func (s *studentService) ListStudents(ctx context.Context) ([]model.User, error) {
	students, err := s.userRepo.FindStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}

// UpdateStudent applies a partial update. Admins may update anyone;
// students only themselves. A patched password is stored hashed.
func (s *studentService) UpdateStudent(ctx context.Context, targetID, actorID int, actorRole string, req model.UpdateUserRequest) (*model.User, error) {
	if actorRole != model.RoleAdmin && targetID != actorID {
		return nil, ErrForbidden
	}

	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		req.Password = &hashed
	}

	user, err := s.userRepo.Update(ctx, targetID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *studentService) DeleteStudent(ctx context.Context, id int) error {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find student for deletion: %w", err)
	}
	if existing == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}
