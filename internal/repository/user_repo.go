package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hostel_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindStudents(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int) error
	CountAll(ctx context.Context) (int64, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password, role, name, room_number, sharing_type, aadhar_number, mobile`

func scanUser(row pgx.Row, u *model.User) error {
	return row.Scan(&u.ID, &u.Username, &u.Password, &u.Role, &u.Name,
		&u.RoomNumber, &u.SharingType, &u.AadharNumber, &u.Mobile)
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password, role, name, room_number, sharing_type, aadhar_number, mobile)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Username, user.Password, user.Role, user.Name,
		user.RoomNumber, user.SharingType, user.AadharNumber, user.Mobile).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := scanUser(r.db.QueryRow(ctx, sql, id), user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindByUsername retrieves a user by their username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	err := scanUser(r.db.QueryRow(ctx, sql, username), user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is handled by the service layer
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindStudents retrieves all users with the student role
func (r *userRepository) FindStudents(ctx context.Context) ([]model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, model.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Update applies a partial update and returns the updated user.
// Only fields present in the request are written.
func (r *userRepository) Update(ctx context.Context, id int, req model.UpdateUserRequest) (*model.User, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString("UPDATE users SET ")

	args := []interface{}{}
	argCount := 1
	var sets []string

	if req.Password != nil {
		sets = append(sets, fmt.Sprintf("password = $%d", argCount))
		args = append(args, *req.Password)
		argCount++
	}
	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *req.Name)
		argCount++
	}
	if req.RoomNumber != nil {
		sets = append(sets, fmt.Sprintf("room_number = $%d", argCount))
		args = append(args, *req.RoomNumber)
		argCount++
	}
	if req.SharingType != nil {
		sets = append(sets, fmt.Sprintf("sharing_type = $%d", argCount))
		args = append(args, *req.SharingType)
		argCount++
	}
	if req.AadharNumber != nil {
		sets = append(sets, fmt.Sprintf("aadhar_number = $%d", argCount))
		args = append(args, *req.AadharNumber)
		argCount++
	}
	if req.Mobile != nil {
		sets = append(sets, fmt.Sprintf("mobile = $%d", argCount))
		args = append(args, *req.Mobile)
		argCount++
	}

	if len(sets) == 0 {
		// Nothing to change; return the current row
		return r.FindByID(ctx, id)
	}

	queryBuilder.WriteString(strings.Join(sets, ", "))
	queryBuilder.WriteString(fmt.Sprintf(" WHERE id = $%d RETURNING ", argCount))
	queryBuilder.WriteString(userColumns)
	args = append(args, id)

	user := &model.User{}
	err := scanUser(r.db.QueryRow(ctx, queryBuilder.String(), args...), user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user from the database
func (r *userRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM users WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for deletion")
	}
	return nil
}

// CountAll returns the total number of users, used by the seed guard
func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
