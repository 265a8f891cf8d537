package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdateClientRequest struct {
	GuardianName   string `json:"guardian_name" validate:"omitempty,max=200"`
	Notes          string `json:"notes" validate:"omitempty"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
	Allergies      string `json:"allergies" validate:"omitempty"`
	Medications    string `json:"medications" validate:"omitempty"`
}

// Response DTOs

// ClientProfileResponse is the profile fragment embedded in UserResponse
type ClientProfileResponse struct {
	GuardianName   string `json:"guardian_name,omitempty"`
	Notes          string `json:"notes,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`
	Allergies      string `json:"allergies,omitempty"`
	Medications    string `json:"medications,omitempty"`
	IsActive       *bool  `json:"is_active"`
}

type ClientResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	GuardianName   string    `json:"guardian_name,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	MedicalHistory string    `json:"medical_history,omitempty"`
	Allergies      string    `json:"allergies,omitempty"`
	Medications    string    `json:"medications,omitempty"`
	IsActive       *bool     `json:"is_active"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}
