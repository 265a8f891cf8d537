package repository

import (
	"errors"
	"strings"

	"fisio-connect-api/internal/domain/entity"
	domainRepo "fisio-connect-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalProfileRepository struct{}

func NewProfessionalProfileRepository() domainRepo.ProfessionalProfileRepository {
	return &professionalProfileRepository{}
}

func (r *professionalProfileRepository) Create(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Create(profile).Error
}

func (r *professionalProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error) {
	var profile entity.ProfessionalProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindActive returns active profiles ordered by the owner's name, optionally
// filtered by a case-insensitive specialty substring.
func (r *professionalProfileRepository) FindActive(db *gorm.DB, specialty string) ([]entity.ProfessionalProfile, error) {
	query := db.Preload("User").
		Joins("JOIN users ON users.id = professional_profiles.user_id").
		Where("professional_profiles.is_active = ?", true).
		Order("users.first_name, users.last_name")

	if specialty != "" {
		query = query.Where("LOWER(professional_profiles.specialty) LIKE ?", "%"+strings.ToLower(specialty)+"%")
	}

	var profiles []entity.ProfessionalProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *professionalProfileRepository) Update(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Save(profile).Error
}

func (r *professionalProfileRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.ProfessionalProfile{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
