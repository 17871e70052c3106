package repository

import (
	"context"
	"errors"
	"fmt"

	"hostel_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// RentRepository defines operations for rent records
type RentRepository interface {
	Create(ctx context.Context, rent *model.RentRecord) error
	FindByID(ctx context.Context, id int64) (*model.RentRecord, error)
	FindAll(ctx context.Context) ([]model.RentRecord, error)
	FindByStudent(ctx context.Context, studentID int) ([]model.RentRecord, error)
	MarkPaid(ctx context.Context, id int64) (*model.RentRecord, error)
}

type rentRepository struct {
	db DB
}

// NewRentRepository creates a new RentRepository
func NewRentRepository(db DB) RentRepository {
	return &rentRepository{db: db}
}

const rentColumns = `id, student_id, amount, status, month, payment_date`

func scanRent(row pgx.Row, rr *model.RentRecord) error {
	return row.Scan(&rr.ID, &rr.StudentID, &rr.Amount, &rr.Status, &rr.Month, &rr.PaymentDate)
}

// Create inserts a new rent record
func (r *rentRepository) Create(ctx context.Context, rent *model.RentRecord) error {
	sql := `INSERT INTO rent_records (student_id, amount, status, month)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, rent.StudentID, rent.Amount, rent.Status, rent.Month).Scan(&rent.ID)
	if err != nil {
		return fmt.Errorf("failed to create rent record: %w", err)
	}
	return nil
}

// FindByID retrieves a rent record by its ID
func (r *rentRepository) FindByID(ctx context.Context, id int64) (*model.RentRecord, error) {
	rent := &model.RentRecord{}
	sql := `SELECT ` + rentColumns + ` FROM rent_records WHERE id = $1`
	err := scanRent(r.db.QueryRow(ctx, sql, id), rent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find rent record by ID: %w", err)
	}
	return rent, nil
}

// FindAll retrieves every rent record, newest first
func (r *rentRepository) FindAll(ctx context.Context) ([]model.RentRecord, error) {
	sql := `SELECT ` + rentColumns + ` FROM rent_records ORDER BY id DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query rent records: %w", err)
	}
	defer rows.Close()
	return collectRentRows(rows)
}

// FindByStudent retrieves rent records for one student, newest first
func (r *rentRepository) FindByStudent(ctx context.Context, studentID int) ([]model.RentRecord, error) {
	sql := `SELECT ` + rentColumns + ` FROM rent_records WHERE student_id = $1 ORDER BY id DESC`
	rows, err := r.db.Query(ctx, sql, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rent records by student: %w", err)
	}
	defer rows.Close()
	return collectRentRows(rows)
}

func collectRentRows(rows pgx.Rows) ([]model.RentRecord, error) {
	var records []model.RentRecord
	for rows.Next() {
		var rr model.RentRecord
		if err := scanRent(rows, &rr); err != nil {
			return nil, fmt.Errorf("failed to scan rent row: %w", err)
		}
		records = append(records, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rent rows: %w", err)
	}
	return records, nil
}

// MarkPaid sets the record to paid and stamps the payment date.
// Calling it again on a paid record re-stamps the date.
func (r *rentRepository) MarkPaid(ctx context.Context, id int64) (*model.RentRecord, error) {
	rent := &model.RentRecord{}
	sql := `UPDATE rent_records SET status = $1, payment_date = NOW() WHERE id = $2 RETURNING ` + rentColumns
	err := scanRent(r.db.QueryRow(ctx, sql, model.RentStatusPaid, id), rent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to mark rent record paid: %w", err)
	}
	return rent, nil
}
