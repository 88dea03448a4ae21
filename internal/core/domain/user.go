package domain

import (
	"errors"
	"time"
)

var ErrEmailTaken = errors.New("email already in use")
var ErrMissingFields = errors.New("missing required fields")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// User models a persistent identity record.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Roles        []string   `json:"roles"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AdminStats aggregates account figures for the admin dashboard.
type AdminStats struct {
	TotalUsers int64 `json:"totalUsers"`
}

// HasRole reports whether the user currently carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// AddRole appends a role name; adding an already-present role is a no-op.
func (u *User) AddRole(name string) {
	if !u.HasRole(name) {
		u.Roles = append(u.Roles, name)
	}
}
