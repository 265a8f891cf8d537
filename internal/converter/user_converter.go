package converter

import (
	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Includes the role profile if it is loaded. The password hash is never
// part of the projection.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		UserType:  user.UserType,
		Sex:       user.Sex,
		CPF:       user.CPF,
		Phone:     user.Phone,
		Address:   user.Address,
		IsStaff:   user.IsStaff,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.BirthDate != nil {
		response.BirthDate = user.BirthDate.Format("2006-01-02")
	}

	if user.ProfessionalProfile != nil {
		response.ProfessionalProfile = &dto.ProfessionalProfileResponse{
			RegistrationNumber: user.ProfessionalProfile.RegistrationNumber,
			Specialty:          user.ProfessionalProfile.Specialty,
			Qualifications:     user.ProfessionalProfile.Qualifications,
			ExperienceYears:    user.ProfessionalProfile.ExperienceYears,
			Clinic:             user.ProfessionalProfile.Clinic,
			ScheduleNotes:      user.ProfessionalProfile.ScheduleNotes,
			IsActive:           user.ProfessionalProfile.IsActive,
		}
	}

	if user.ClientProfile != nil {
		response.ClientProfile = &dto.ClientProfileResponse{
			GuardianName:   user.ClientProfile.GuardianName,
			Notes:          user.ClientProfile.Notes,
			MedicalHistory: user.ClientProfile.MedicalHistory,
			Allergies:      user.ClientProfile.Allergies,
			Medications:    user.ClientProfile.Medications,
			IsActive:       user.ClientProfile.IsActive,
		}
	}

	return response
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
