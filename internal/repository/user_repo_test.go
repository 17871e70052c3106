package repository

import (
	"context"
	"regexp"
	"testing"

	"hostel_manager/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("rahul", "hashed", "student", "Rahul Sharma", strPtr("101"), strPtr("6-sharing"), (*string)(nil), strPtr("9876543210")).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(2))

	user := &model.User{
		Username:    "rahul",
		Password:    "hashed",
		Role:        model.RoleStudent,
		Name:        "Rahul Sharma",
		RoomNumber:  strPtr("101"),
		SharingType: strPtr("6-sharing"),
		Mobile:      strPtr("9876543210"),
	}
	err = repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "role", "name", "room_number", "sharing_type", "aadhar_number", "mobile"}))

	user, err := repo.FindByUsername(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindStudents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE role = $1 ORDER BY id")).
		WithArgs("student").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "role", "name", "room_number", "sharing_type", "aadhar_number", "mobile"}).
			AddRow(2, "rahul", "hash1", "student", "Rahul Sharma", strPtr("101"), strPtr("6-sharing"), (*string)(nil), strPtr("9876543210")).
			AddRow(3, "amit", "hash2", "student", "Amit Patel", strPtr("102"), strPtr("3-sharing"), (*string)(nil), strPtr("9876543211")))

	students, err := repo.FindStudents(context.Background())

	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "rahul", students[0].Username)
	assert.Equal(t, "amit", students[1].Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_OnlyGivenFields(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	// Only room_number and mobile appear in the SET clause
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET room_number = $1, mobile = $2 WHERE id = $3")).
		WithArgs("105", "9000000000", 2).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "role", "name", "room_number", "sharing_type", "aadhar_number", "mobile"}).
			AddRow(2, "rahul", "hash1", "student", "Rahul Sharma", strPtr("105"), strPtr("6-sharing"), (*string)(nil), strPtr("9000000000")))

	user, err := repo.Update(context.Background(), 2, model.UpdateUserRequest{
		RoomNumber: strPtr("105"),
		Mobile:     strPtr("9000000000"),
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, user.RoomNumber)
	assert.Equal(t, "105", *user.RoomNumber)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_EmptyPatchReturnsCurrentRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(2).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password", "role", "name", "room_number", "sharing_type", "aadhar_number", "mobile"}).
			AddRow(2, "rahul", "hash1", "student", "Rahul Sharma", strPtr("101"), strPtr("6-sharing"), (*string)(nil), strPtr("9876543210")))

	user, err := repo.Update(context.Background(), 2, model.UpdateUserRequest{})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "rahul", user.Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(2).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(999).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.Error(t, repo.Delete(context.Background(), 999))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CountAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
