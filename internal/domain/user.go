package domain

import "time"

// Role is a user's access level.
type Role string

const (
	RoleClient Role = "client"
	RoleBarber Role = "barber"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleBarber || r == RoleAdmin
}

// User represents an account in the system.
type User struct {
	ID    int64
	Name  string
	Email string
	Phone *string
	Role  Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true for admin accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsBarber returns true for barber accounts.
func (u *User) IsBarber() bool {
	return u.Role == RoleBarber
}
