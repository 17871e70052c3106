package model

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Room occupancy categories. Rent amounts (9000 for 3-sharing, 8500
// otherwise) are a client-side convention and not enforced here.
const (
	SharingThree = "3-sharing"
	SharingSix   = "6-sharing"
)

// User represents a hostel resident or an admin account
type User struct {
	ID           int     `json:"id"`
	Username     string  `json:"username"`
	Password     string  `json:"-"` // Hashed; never exposed in JSON responses
	Role         string  `json:"role"`
	Name         string  `json:"name"`
	RoomNumber   *string `json:"roomNumber,omitempty"`
	SharingType  *string `json:"sharingType,omitempty"`
	AadharNumber *string `json:"aadharNumber,omitempty"`
	Mobile       *string `json:"mobile,omitempty"`
}

// RegisterRequest is used for creating a new account. There is no role
// field: public registration only creates students, admin accounts come
// from the seed.
type RegisterRequest struct {
	Username     string  `json:"username" binding:"required"`
	Password     string  `json:"password" binding:"required,min=6"`
	Name         string  `json:"name" binding:"required"`
	RoomNumber   *string `json:"roomNumber"`
	SharingType  *string `json:"sharingType" binding:"omitempty,oneof=3-sharing 6-sharing"`
	AadharNumber *string `json:"aadharNumber"`
	Mobile       *string `json:"mobile"`
}

type UpdateUserRequest struct {
	Password     *string `json:"password,omitempty"` // Pointers to allow partial updates
	Name         *string `json:"name,omitempty"`
	RoomNumber   *string `json:"roomNumber,omitempty"`
	SharingType  *string `json:"sharingType,omitempty" binding:"omitempty,oneof=3-sharing 6-sharing"`
	AadharNumber *string `json:"aadharNumber,omitempty"`
	Mobile       *string `json:"mobile,omitempty"`
}
