package usecase

import (
	"context"

	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type StatsUsecase interface {
	GetUserStats(ctx context.Context) (*dto.UserStatsResponse, error)
}

type statsUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalProfileRepository
	clientRepo       repository.ClientProfileRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalProfileRepository,
	clientRepo repository.ClientProfileRepository,
) StatsUsecase {
	return &statsUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		clientRepo:       clientRepo,
	}
}

// GetUserStats computes the counts at call time; nothing is cached.
func (u *statsUsecase) GetUserStats(ctx context.Context) (*dto.UserStatsResponse, error) {
	db := u.db.WithContext(ctx)

	totalUsers, err := u.userRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count users: %+v", err)
		return nil, err
	}

	activeProfessionals, err := u.professionalRepo.CountActive(db)
	if err != nil {
		u.log.Warnf("Failed to count active professionals: %+v", err)
		return nil, err
	}

	activeClients, err := u.clientRepo.CountActive(db)
	if err != nil {
		u.log.Warnf("Failed to count active clients: %+v", err)
		return nil, err
	}

	activeUsers, err := u.userRepo.CountByActive(db, true)
	if err != nil {
		u.log.Warnf("Failed to count active users: %+v", err)
		return nil, err
	}

	inactiveUsers, err := u.userRepo.CountByActive(db, false)
	if err != nil {
		u.log.Warnf("Failed to count inactive users: %+v", err)
		return nil, err
	}

	return &dto.UserStatsResponse{
		TotalUsers:          totalUsers,
		ActiveProfessionals: activeProfessionals,
		ActiveClients:       activeClients,
		ActiveUsers:         activeUsers,
		InactiveUsers:       inactiveUsers,
	}, nil
}
