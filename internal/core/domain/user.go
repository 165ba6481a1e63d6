package domain

import "time"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User models an account in the attendance system. PasswordHash never
// leaves the process: it is excluded from JSON and from store reads that
// resolve an authenticated identity.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
