package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleLecturer = "lecturer"
	RoleStudent  = "student"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already in use")
var ErrInvalidCredentials = errors.New("invalid credentials or role")
var ErrInvalidRole = errors.New("invalid role")
var ErrSessionNotFound = errors.New("session not found or expired")

// User models an identity in the system. The admin identity is configured
// out-of-band and never persisted; stored users are students or lecturers.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PersistableRole reports whether role may be stored in the user collection.
// Admin is excluded: exactly one admin exists and it lives in configuration.
func PersistableRole(role string) bool {
	return role == RoleStudent || role == RoleLecturer
}

// KnownRole reports whether role is one of the three recognised roles.
func KnownRole(role string) bool {
	return role == RoleAdmin || PersistableRole(role)
}
