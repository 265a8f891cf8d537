package converter

import (
	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"
)

// ProfessionalToResponse converts a ProfessionalProfile entity to ProfessionalResponse DTO
func ProfessionalToResponse(profile *entity.ProfessionalProfile) *dto.ProfessionalResponse {
	if profile == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:                 profile.UserID,
		Username:           profile.User.Username,
		Email:              profile.User.Email,
		FullName:           profile.User.FullName(),
		RegistrationNumber: profile.RegistrationNumber,
		Specialty:          profile.Specialty,
		Qualifications:     profile.Qualifications,
		ExperienceYears:    profile.ExperienceYears,
		Clinic:             profile.Clinic,
		ScheduleNotes:      profile.ScheduleNotes,
		IsActive:           profile.IsActive,
	}
}

// ProfessionalsToResponses converts a slice of ProfessionalProfile entities to DTOs
func ProfessionalsToResponses(profiles []entity.ProfessionalProfile) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ProfessionalToResponse(&profiles[i])
	}
	return responses
}
