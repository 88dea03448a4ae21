package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var ErrRoleNotFound = errors.New("role not found")
var ErrRoleExists = errors.New("role already exists")

// Role is a named grant stored in the credential store.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RequestedRole is the closed resolution of the free-form role string a client
// may send at registration time.
type RequestedRole int

const (
	RequestedUser RequestedRole = iota
	RequestedAdmin
	RequestedUnrecognized
)

// ResolveRequestedRole maps the registration role field onto the closed set of
// assignable defaults. Blank resolves to USER; anything outside {USER, ADMIN}
// is Unrecognized and results in a user with no role attached.
func ResolveRequestedRole(raw string) RequestedRole {
	switch strings.TrimSpace(raw) {
	case "", RoleUser:
		return RequestedUser
	case RoleAdmin:
		return RequestedAdmin
	default:
		return RequestedUnrecognized
	}
}

// Name returns the role name to assign, or "" for Unrecognized.
func (r RequestedRole) Name() string {
	switch r {
	case RequestedUser:
		return RoleUser
	case RequestedAdmin:
		return RoleAdmin
	default:
		return ""
	}
}
