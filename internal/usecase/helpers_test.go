package usecase

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"
	"fisio-connect-api/internal/repository"
	"fisio-connect-api/internal/service"
	"fisio-connect-api/internal/session"
	"fisio-connect-api/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.ProfessionalProfile{},
		&entity.ClientProfile{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// stubSessionStore is an in-memory session.Store with the same contract as
// the Redis-backed one: one live token per user, idempotent revocation.
type stubSessionStore struct {
	mu      sync.Mutex
	next    int
	byUser  map[string]string
	byToken map[string]*jwt.Claims
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		byUser:  make(map[string]string),
		byToken: make(map[string]*jwt.Claims),
	}
}

func (s *stubSessionStore) Issue(ctx context.Context, user *entity.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.byUser[user.ID.String()]; ok {
		return token, nil
	}

	s.next++
	token := fmt.Sprintf("test-token-%d", s.next)
	s.byUser[user.ID.String()] = token
	s.byToken[token] = &jwt.Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
		TokenID:  token,
	}
	return token, nil
}

func (s *stubSessionStore) Validate(ctx context.Context, token string) (*jwt.Claims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims, ok := s.byToken[token]
	if !ok {
		return nil, session.ErrSessionRevoked
	}
	return claims, nil
}

func (s *stubSessionStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if claims, ok := s.byToken[token]; ok {
		delete(s.byToken, token)
		delete(s.byUser, claims.UserID.String())
	}
	return nil
}

type testEnv struct {
	db       *gorm.DB
	sessions *stubSessionStore
	auth     AuthUsecase
	users    UserUsecase
	pros     ProfessionalUsecase
	clients  ClientUsecase
	stats    StatsUsecase
	audits   AuditLogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	log := newTestLogger()

	userRepo := repository.NewUserRepository()
	professionalRepo := repository.NewProfessionalProfileRepository()
	clientRepo := repository.NewClientProfileRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)
	sessions := newStubSessionStore()

	return &testEnv{
		db:       db,
		sessions: sessions,
		auth:     NewAuthUsecase(db, log, userRepo, professionalRepo, clientRepo, sessions, auditService, 24*time.Hour),
		users:    NewUserUsecase(db, log, userRepo, auditService),
		pros:     NewProfessionalUsecase(db, log, userRepo, professionalRepo, auditService),
		clients:  NewClientUsecase(db, log, userRepo, clientRepo, auditService),
		stats:    NewStatsUsecase(db, log, userRepo, professionalRepo, clientRepo),
		audits:   NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

func professionalRequest(username, cpf string) *dto.RegisterProfessionalRequest {
	return &dto.RegisterProfessionalRequest{
		Username:           username,
		Email:              username + "@example.com",
		Password:           "s3nha-segura",
		FirstName:          "Ana",
		LastName:           "Souza",
		Sex:                entity.SexFemale,
		CPF:                cpf,
		BirthDate:          "1990-05-20",
		Phone:              "11987654321",
		RegistrationNumber: "CREFITO-" + username,
		Specialty:          "Ortopedia",
		Qualifications:     "Fisioterapia ortopedica",
		ExperienceYears:    5,
		Clinic:             "Clinica Central",
	}
}

func clientRequest(username, cpf string) *dto.RegisterClientRequest {
	return &dto.RegisterClientRequest{
		Username:       username,
		Email:          username + "@example.com",
		Password:       "s3nha-segura",
		FirstName:      "Bruno",
		LastName:       "Lima",
		Sex:            entity.SexMale,
		CPF:            cpf,
		BirthDate:      "1985-11-02",
		MedicalHistory: "Lesao no joelho em 2020",
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
