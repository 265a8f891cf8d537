package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateUserRequest carries the admin-editable account fields.
// Username, CPF and user type are immutable after registration;
// activation is toggled through the deactivate/reactivate endpoints.
type UpdateUserRequest struct {
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Sex       string `json:"sex" validate:"omitempty,oneof=M F O"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"omitempty,max=15"`
	Address   string `json:"address" validate:"omitempty"`
}

// Response DTOs

type UserResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	Username            string                       `json:"username"`
	Email               string                       `json:"email"`
	FirstName           string                       `json:"first_name"`
	LastName            string                       `json:"last_name"`
	FullName            string                       `json:"full_name"`
	UserType            string                       `json:"user_type"`
	Sex                 string                       `json:"sex"`
	CPF                 string                       `json:"cpf"`
	BirthDate           string                       `json:"birth_date,omitempty"`
	Phone               string                       `json:"phone,omitempty"`
	Address             string                       `json:"address,omitempty"`
	IsStaff             bool                         `json:"is_staff"`
	IsActive            *bool                        `json:"is_active"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
	ProfessionalProfile *ProfessionalProfileResponse `json:"professional_profile,omitempty"`
	ClientProfile       *ClientProfileResponse       `json:"client_profile,omitempty"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
