package model

import "time"

const (
	RentStatusUnpaid = "unpaid"
	RentStatusPaid   = "paid"
)

// RentRecord is a demand raised by the admin for a student's monthly rent
type RentRecord struct {
	ID          int64      `json:"id"`
	StudentID   int        `json:"studentId"`
	Amount      int64      `json:"amount"` // In whole rupees
	Status      string     `json:"status"` // "unpaid" or "paid"
	Month       string     `json:"month"`  // Free-text label, e.g. "October 2023"
	PaymentDate *time.Time `json:"paymentDate,omitempty"` // Set only once the record is paid
}

// CreateRentRequest is used for raising a new rent demand
type CreateRentRequest struct {
	StudentID int    `json:"studentId" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Status    string `json:"status" binding:"omitempty,oneof=unpaid paid"`
	Month     string `json:"month" binding:"required"`
}
