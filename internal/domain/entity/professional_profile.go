package entity

import "github.com/google/uuid"

// ProfessionalProfile represents physiotherapist-specific profile data
type ProfessionalProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RegistrationNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"registration_number"`
	Specialty          string    `gorm:"type:varchar(100);index" json:"specialty,omitempty"`
	Qualifications     string    `gorm:"type:text" json:"qualifications,omitempty"`
	ExperienceYears    int       `gorm:"not null;default:0" json:"experience_years"`
	Clinic             string    `gorm:"type:varchar(200)" json:"clinic,omitempty"`
	ScheduleNotes      string    `gorm:"type:text" json:"schedule_notes,omitempty"`
	IsActive           *bool     `gorm:"not null;default:true;index" json:"is_active"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ProfessionalProfile) TableName() string {
	return "professional_profiles"
}
