package models

import "time"

// Role is the authorization level of a user account.
type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

// Status marks a row as visible or soft-deleted. Deleted rows are never
// returned by read operations.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	Role   Role   `json:"role"`
	Status Status `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CanModify reports whether u may change a resource owned by ownerID.
// Admins may change anything.
func (u User) CanModify(ownerID int64) bool {
	return u.Role == RoleAdmin || u.ID == ownerID
}
