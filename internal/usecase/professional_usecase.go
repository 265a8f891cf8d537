package usecase

import (
	"context"
	"errors"

	"fisio-connect-api/internal/converter"
	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"
	"fisio-connect-api/internal/domain/repository"
	"fisio-connect-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrProfessionalNotFound = errors.New("professional not found")

type ProfessionalUsecase interface {
	GetAllProfessionals(ctx context.Context, specialty string) (*dto.ProfessionalListResponse, error)
	GetProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	DeactivateProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error)
	ReactivateProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, userID uuid.UUID) error
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalProfileRepository
	auditService     service.AuditService
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalProfileRepository,
	auditService service.AuditService,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

// GetAllProfessionals lists active profiles ordered by owner name. The
// specialty filter is a case-insensitive substring match. Read-only.
func (u *professionalUsecase) GetAllProfessionals(ctx context.Context, specialty string) (*dto.ProfessionalListResponse, error) {
	profiles, err := u.professionalRepo.FindActive(u.db.WithContext(ctx), specialty)
	if err != nil {
		u.log.Warnf("Failed to find professional profiles: %+v", err)
		return nil, err
	}

	professionals := converter.ProfessionalsToResponses(profiles)

	return &dto.ProfessionalListResponse{
		Professionals: professionals,
		Total:         len(professionals),
	}, nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error) {
	profile, err := u.professionalRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find professional profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalToResponse(profile), nil
}

func (u *professionalUsecase) UpdateProfessional(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.professionalRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	oldValue := converter.ProfessionalToResponse(profile)

	if req.RegistrationNumber != "" {
		profile.RegistrationNumber = req.RegistrationNumber
	}
	if req.Specialty != "" {
		profile.Specialty = req.Specialty
	}
	if req.Qualifications != "" {
		profile.Qualifications = req.Qualifications
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.Clinic != "" {
		profile.Clinic = req.Clinic
	}
	if req.ScheduleNotes != "" {
		profile.ScheduleNotes = req.ScheduleNotes
	}

	if err := u.professionalRepo.Update(tx, profile); err != nil {
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrRegistrationAlreadyExists
		}
		u.log.Warnf("Failed to update professional profile: %+v", err)
		return nil, err
	}

	newValue := converter.ProfessionalToResponse(profile)
	actor := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionProfessionalUpdate, "professional_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *professionalUsecase) DeactivateProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error) {
	return u.setProfileActive(ctx, userID, false, entity.AuditActionProfessionalDeactivate)
}

func (u *professionalUsecase) ReactivateProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error) {
	return u.setProfileActive(ctx, userID, true, entity.AuditActionProfessionalReactivate)
}

func (u *professionalUsecase) setProfileActive(ctx context.Context, userID uuid.UUID, active bool, action string) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.professionalRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	oldValue := converter.ProfessionalToResponse(profile)
	profile.IsActive = &active

	if err := u.professionalRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update professional profile: %+v", err)
		return nil, err
	}

	newValue := converter.ProfessionalToResponse(profile)
	actor := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, action, "professional_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteProfessional removes the owning account; the profile follows via
// the cascade constraint.
func (u *professionalUsecase) DeleteProfessional(ctx context.Context, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.professionalRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrProfessionalNotFound
	}
	oldValue := converter.ProfessionalToResponse(profile)

	affectedRows, err := u.userRepo.Delete(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to delete professional: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrProfessionalNotFound
	}

	actor := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionProfessionalDelete, "professional_profile", userID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
