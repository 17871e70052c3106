package service

import (
	"context"
	"testing"
	"time"

	"hostel_manager/internal/model"
	"hostel_manager/internal/session"
	"hostel_manager/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *session.Store, *utils.JWTUtil) {
	t.Helper()
	userRepo := newFakeUserRepo()
	store := session.NewStore(time.Minute)
	t.Cleanup(store.Close)
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	return NewAuthService(userRepo, store, jwtUtil), userRepo, store, jwtUtil
}

func TestAuthService_Register(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), model.RegisterRequest{
		Username:    "rahul",
		Password:    "student123",
		Name:        "Rahul Kumar",
		RoomNumber:  strPtr("101"),
		SharingType: strPtr(model.SharingSix),
	})

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.NotEqual(t, "student123", user.Password)
	assert.True(t, utils.CheckPasswordHash("student123", user.Password))
}

func TestAuthService_Register_NeverGrantsAdmin(t *testing.T) {
	svc, _, store, jwtUtil := newAuthFixture(t)

	user, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "sneaky", Password: "secret123", Name: "Sneaky",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStudent, user.Role)

	// The session opened for that account carries the student role too
	_, token, err := svc.Login(context.Background(), "sneaky", "secret123")
	require.NoError(t, err)
	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	sess := store.Get(claims.SessionID)
	require.NotNil(t, sess)
	assert.Equal(t, model.RoleStudent, sess.Role)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := model.RegisterRequest{Username: "rahul", Password: "student123", Name: "Rahul Kumar"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	svc, userRepo, store, jwtUtil := newAuthFixture(t)

	hashed, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &model.User{
		Username: "admin", Password: hashed, Role: model.RoleAdmin, Name: "Hanumant Admin",
	}))

	user, token, err := svc.Login(context.Background(), "admin", "admin123")

	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	require.NotEmpty(t, token)

	// The token references a live server-side session
	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	sess := store.Get(claims.SessionID)
	require.NotNil(t, sess)
	assert.Equal(t, user.ID, sess.UserID)
	assert.Equal(t, model.RoleAdmin, sess.Role)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "rahul", Password: "student123", Name: "Rahul Kumar",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "rahul", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	svc, _, store, jwtUtil := newAuthFixture(t)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "rahul", Password: "student123", Name: "Rahul Kumar",
	})
	require.NoError(t, err)

	_, token, err := svc.Login(context.Background(), "rahul", "student123")
	require.NoError(t, err)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)

	svc.Logout(claims.SessionID)

	// Token still parses, but the session behind it is gone
	assert.Nil(t, store.Get(claims.SessionID))
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	created, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "rahul", Password: "student123", Name: "Rahul Kumar",
	})
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "rahul", user.Username)

	_, err = svc.CurrentUser(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
