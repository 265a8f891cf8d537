package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the shared authentication identity for both roles
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"last_name"`
	UserType  string     `gorm:"type:varchar(20);not null;index" json:"user_type"`
	Sex       string     `gorm:"type:char(1);not null" json:"sex"`
	CPF       string     `gorm:"type:char(14);uniqueIndex;not null" json:"cpf"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Phone     string     `gorm:"type:varchar(15)" json:"phone,omitempty"`
	Address   string     `gorm:"type:text" json:"address,omitempty"`
	IsStaff   bool       `gorm:"not null;default:false" json:"is_staff"`
	IsActive  *bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	ProfessionalProfile *ProfessionalProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"professional_profile,omitempty"`
	ClientProfile       *ClientProfile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"client_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

// FullName returns the display name used for ordering and listings
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) IsProfessional() bool {
	return u.UserType == UserTypeProfessional
}

func (u *User) IsClient() bool {
	return u.UserType == UserTypeClient
}

// User type constants
const (
	UserTypeProfessional = "professional"
	UserTypeClient       = "client"
)

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
	SexOther  = "O"
)
