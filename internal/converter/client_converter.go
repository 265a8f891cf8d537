package converter

import (
	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"
)

// ClientToResponse converts a ClientProfile entity to ClientResponse DTO
func ClientToResponse(profile *entity.ClientProfile) *dto.ClientResponse {
	if profile == nil {
		return nil
	}

	return &dto.ClientResponse{
		ID:             profile.UserID,
		Username:       profile.User.Username,
		Email:          profile.User.Email,
		FullName:       profile.User.FullName(),
		GuardianName:   profile.GuardianName,
		Notes:          profile.Notes,
		MedicalHistory: profile.MedicalHistory,
		Allergies:      profile.Allergies,
		Medications:    profile.Medications,
		IsActive:       profile.IsActive,
	}
}

// ClientsToResponses converts a slice of ClientProfile entities to DTOs
func ClientsToResponses(profiles []entity.ClientProfile) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, len(profiles))
	for i := range profiles {
		responses[i] = *ClientToResponse(&profiles[i])
	}
	return responses
}
