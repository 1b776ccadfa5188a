package dto

import (
	"github.com/Tiagotpk/minimal-api/internal/administrator/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type AdministratorRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
}

// Validate runs every check and collects the failures in order; an empty
// slice means the request is valid. Checks never short-circuit so the
// caller sees all violations at once.
func (r AdministratorRequest) Validate() []string {
	messages := make([]string, 0)

	if r.Email == "" {
		messages = append(messages, "the email field cannot be empty")
	}
	if r.Password == "" {
		messages = append(messages, "the password field cannot be empty")
	}
	if r.Role == nil || *r.Role == "" {
		messages = append(messages, "the role field cannot be empty")
	} else if _, err := model.ParseRole(*r.Role); err != nil {
		messages = append(messages, "the role must be either Administrator or Editor")
	}

	return messages
}

type AdministratorResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewAdministratorResponse(adm model.Administrator) AdministratorResponse {
	return AdministratorResponse{
		ID:    adm.ID,
		Email: adm.Email,
		Role:  string(adm.Role),
	}
}

type ValidationErrors struct {
	Messages []string `json:"messages"`
}
