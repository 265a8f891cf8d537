package repository

import (
	"errors"

	"fisio-connect-api/internal/domain/entity"
	domainRepo "fisio-connect-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientProfileRepository struct{}

func NewClientProfileRepository() domainRepo.ClientProfileRepository {
	return &clientProfileRepository{}
}

func (r *clientProfileRepository) Create(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Create(profile).Error
}

func (r *clientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error) {
	var profile entity.ClientProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *clientProfileRepository) FindActive(db *gorm.DB) ([]entity.ClientProfile, error) {
	var profiles []entity.ClientProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = client_profiles.user_id").
		Where("client_profiles.is_active = ?", true).
		Order("users.first_name, users.last_name").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *clientProfileRepository) Update(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Save(profile).Error
}

func (r *clientProfileRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.ClientProfile{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
