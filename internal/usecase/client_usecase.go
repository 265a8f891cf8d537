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

var ErrClientNotFound = errors.New("client not found")

type ClientUsecase interface {
	GetAllClients(ctx context.Context) (*dto.ClientListResponse, error)
	GetClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, userID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeactivateClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error)
	ReactivateClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, userID uuid.UUID) error
}

type clientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	clientRepo   repository.ClientProfileRepository
	auditService service.AuditService
}

func NewClientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	clientRepo repository.ClientProfileRepository,
	auditService service.AuditService,
) ClientUsecase {
	return &clientUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		clientRepo:   clientRepo,
		auditService: auditService,
	}
}

// GetAllClients lists active profiles ordered by owner name. Read-only.
func (u *clientUsecase) GetAllClients(ctx context.Context) (*dto.ClientListResponse, error) {
	profiles, err := u.clientRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find client profiles: %+v", err)
		return nil, err
	}

	clients := converter.ClientsToResponses(profiles)

	return &dto.ClientListResponse{
		Clients: clients,
		Total:   len(clients),
	}, nil
}

func (u *clientUsecase) GetClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error) {
	profile, err := u.clientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find client profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrClientNotFound
	}

	return converter.ClientToResponse(profile), nil
}

func (u *clientUsecase) UpdateClient(ctx context.Context, userID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.clientRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find client profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrClientNotFound
	}

	oldValue := converter.ClientToResponse(profile)

	if req.GuardianName != "" {
		profile.GuardianName = req.GuardianName
	}
	if req.Notes != "" {
		profile.Notes = req.Notes
	}
	if req.MedicalHistory != "" {
		profile.MedicalHistory = req.MedicalHistory
	}
	if req.Allergies != "" {
		profile.Allergies = req.Allergies
	}
	if req.Medications != "" {
		profile.Medications = req.Medications
	}

	if err := u.clientRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update client profile: %+v", err)
		return nil, err
	}

	newValue := converter.ClientToResponse(profile)
	actor := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionClientUpdate, "client_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *clientUsecase) DeactivateClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error) {
	return u.setProfileActive(ctx, userID, false, entity.AuditActionClientDeactivate)
}

func (u *clientUsecase) ReactivateClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error) {
	return u.setProfileActive(ctx, userID, true, entity.AuditActionClientReactivate)
}

func (u *clientUsecase) setProfileActive(ctx context.Context, userID uuid.UUID, active bool, action string) (*dto.ClientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.clientRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find client profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrClientNotFound
	}

	oldValue := converter.ClientToResponse(profile)
	profile.IsActive = &active

	if err := u.clientRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update client profile: %+v", err)
		return nil, err
	}

	newValue := converter.ClientToResponse(profile)
	actor := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, action, "client_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteClient removes the owning account; the profile follows via the
// cascade constraint.
func (u *clientUsecase) DeleteClient(ctx context.Context, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.clientRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find client profile: %+v", err)
		return err
	}
	if profile == nil {
		return ErrClientNotFound
	}
	oldValue := converter.ClientToResponse(profile)

	affectedRows, err := u.userRepo.Delete(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to delete client: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrClientNotFound
	}

	actor := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionClientDelete, "client_profile", userID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
