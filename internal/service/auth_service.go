package service

import (
	"context"
	"errors"
	"fmt"

	"hostel_manager/internal/model"
	"hostel_manager/internal/repository"
	"hostel_manager/internal/session"
	"hostel_manager/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Logout(sessionID string)
	CurrentUser(ctx context.Context, userID int) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions *session.Store
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessions *session.Store, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new account. The caller logs in separately.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username: req.Username,
		Password: hashedPassword,
		// Registration never grants admin; the role-gated routes depend on it
		Role:         model.RoleStudent,
		Name:         req.Name,
		RoomNumber:   req.RoomNumber,
		SharingType:  req.SharingType,
		AadharNumber: req.AadharNumber,
		Mobile:       req.Mobile,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login authenticates a user, opens a session and returns its token.
// Unknown username and wrong password fail identically.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	sess, err := s.sessions.Create(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role, sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Logout revokes the session; the token is useless afterwards
func (s *authService) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}

// CurrentUser returns the identity behind an authenticated session
func (s *authService) CurrentUser(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
