package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
)

// User models an authenticated actor. Username is the primary key; there is
// no numeric id. LastLoginDate is nil until the first successful login.
type User struct {
	Username      string     `json:"username"`
	PasswordHash  string     `json:"-"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`
	Role          string     `json:"role"`
}

// ValidRole reports whether role is one of the two roles the schema allows.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}
