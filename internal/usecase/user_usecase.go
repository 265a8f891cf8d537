package usecase

import (
	"context"

	"fisio-connect-api/internal/converter"
	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/delivery/http/middleware"
	"fisio-connect-api/internal/domain/entity"
	"fisio-connect-api/internal/domain/repository"
	"fisio-connect-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeactivateUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	ReactivateUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// actorFromContext resolves the audit author from the authenticated
// request; nil when there is none, so the log row keeps a null author.
func actorFromContext(ctx context.Context) *uuid.UUID {
	if actorID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &actorID
	}
	return nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	responses := converter.UsersToResponses(users)

	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}, nil
}

func (u *userUsecase) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, userID uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldValue := converter.UserToResponse(user)

	if err := applyAccountUpdate(user, accountUpdateFields{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Sex:       req.Sex,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		Address:   req.Address,
	}); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	newValue := converter.UserToResponse(user)
	actor := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, entity.AuditActionUserUpdate, "user", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *userUsecase) DeactivateUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return u.setUserActive(ctx, userID, false, entity.AuditActionUserDeactivate)
}

func (u *userUsecase) ReactivateUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return u.setUserActive(ctx, userID, true, entity.AuditActionUserReactivate)
}

func (u *userUsecase) setUserActive(ctx context.Context, userID uuid.UUID, active bool, action string) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	oldValue := converter.UserToResponse(user)
	user.IsActive = &active

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	newValue := converter.UserToResponse(user)
	actor := actorFromContext(ctx)
	if err := u.auditService.LogUpdate(ctx, tx, actor, action, "user", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

// DeleteUser removes the account for good. The role profile goes with it
// via the cascade constraint.
func (u *userUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	oldValue := converter.UserToResponse(user)

	affectedRows, err := u.userRepo.Delete(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrUserNotFound
	}

	actor := actorFromContext(ctx)
	if err := u.auditService.LogDelete(ctx, tx, actor, entity.AuditActionUserDelete, "user", userID.String(), oldValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
