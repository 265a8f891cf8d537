package entity

import "github.com/google/uuid"

// ClientProfile represents patient-specific profile data
type ClientProfile struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	GuardianName   string    `gorm:"type:varchar(200)" json:"guardian_name,omitempty"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	MedicalHistory string    `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies      string    `gorm:"type:text" json:"allergies,omitempty"`
	Medications    string    `gorm:"type:text" json:"medications,omitempty"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ClientProfile) TableName() string {
	return "client_profiles"
}
