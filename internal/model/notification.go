package model

import "time"

// Notification is an announcement published to all residents.
// Append-only: there is no edit or delete.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateNotificationRequest struct {
	Message string `json:"message" binding:"required"`
}
