package domain

import "time"

// User represents an authenticated identity in the dashboard.
// PasswordHash never leaves the repository layer: it is excluded from
// serialization and stripped again by Sanitized before a user is handed
// to any transport.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	LastAccessAt *time.Time `json:"last_access_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) IsActive() bool {
	return u != nil && u.Active
}

// Sanitized returns a copy with the password hash cleared.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	return &clean
}
