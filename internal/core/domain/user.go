package domain

import "time"

// User models the single-tenant admin account.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
