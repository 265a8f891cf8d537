package repository

import (
	"fisio-connect-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ProfessionalProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error)
	FindActive(db *gorm.DB, specialty string) ([]entity.ProfessionalProfile, error)
	Update(db *gorm.DB, profile *entity.ProfessionalProfile) error
	CountActive(db *gorm.DB) (int64, error)
}
