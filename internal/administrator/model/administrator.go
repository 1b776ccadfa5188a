package model

import (
	"errors"
	"fmt"
)

type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleEditor        Role = "Editor"
)

// ParseRole maps free text onto the closed role set. Anything else is
// rejected at the boundary; an unchecked role string never reaches the
// repository.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleEditor:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

var (
	ErrNotFound           = errors.New("administrator not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Administrator struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
