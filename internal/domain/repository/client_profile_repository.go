package repository

import (
	"fisio-connect-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ClientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error)
	FindActive(db *gorm.DB) ([]entity.ClientProfile, error)
	Update(db *gorm.DB, profile *entity.ClientProfile) error
	CountActive(db *gorm.DB) (int64, error)
}
