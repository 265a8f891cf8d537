package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type UpdateProfessionalRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"omitempty,max=20"`
	Specialty          string `json:"specialty" validate:"omitempty,max=100"`
	Qualifications     string `json:"qualifications" validate:"omitempty"`
	ExperienceYears    *int   `json:"experience_years" validate:"omitempty,gte=0"`
	Clinic             string `json:"clinic" validate:"omitempty,max=200"`
	ScheduleNotes      string `json:"schedule_notes" validate:"omitempty"`
}

// Response DTOs

// ProfessionalProfileResponse is the profile fragment embedded in UserResponse
type ProfessionalProfileResponse struct {
	RegistrationNumber string `json:"registration_number"`
	Specialty          string `json:"specialty,omitempty"`
	Qualifications     string `json:"qualifications,omitempty"`
	ExperienceYears    int    `json:"experience_years"`
	Clinic             string `json:"clinic,omitempty"`
	ScheduleNotes      string `json:"schedule_notes,omitempty"`
	IsActive           *bool  `json:"is_active"`
}

type ProfessionalResponse struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	RegistrationNumber string    `json:"registration_number"`
	Specialty          string    `json:"specialty,omitempty"`
	Qualifications     string    `json:"qualifications,omitempty"`
	ExperienceYears    int       `json:"experience_years"`
	Clinic             string    `json:"clinic,omitempty"`
	ScheduleNotes      string    `json:"schedule_notes,omitempty"`
	IsActive           *bool     `json:"is_active"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
