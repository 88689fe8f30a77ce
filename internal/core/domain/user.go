package domain

import (
	"errors"
	"time"
)

// Role determines which operations a caller may perform.
type Role string

const (
	RoleReader Role = "READER"
	RoleWriter Role = "WRITER"
	RoleAdmin  Role = "ADMIN"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")

// ParseRole validates a role string supplied by a client.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleReader, RoleWriter, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
