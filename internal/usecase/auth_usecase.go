package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fisio-connect-api/internal/converter"
	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"
	"fisio-connect-api/internal/domain/repository"
	"fisio-connect-api/internal/service"
	"fisio-connect-api/internal/session"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameAlreadyExists     = errors.New("username already exists")
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrCPFAlreadyExists          = errors.New("CPF already exists")
	ErrRegistrationAlreadyExists = errors.New("registration number already exists")
	ErrInvalidCredentials        = errors.New("invalid username or password")
	ErrAccountInactive           = errors.New("account is inactive")
	ErrUserNotFound              = errors.New("user not found")
	ErrInvalidDateFormat         = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.UserResponse, error)
	RegisterClient(ctx context.Context, req *dto.RegisterClientRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalProfileRepository
	clientRepo       repository.ClientProfileRepository
	sessions         session.Store
	auditService     service.AuditService
	sessionTTL       time.Duration
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalProfileRepository,
	clientRepo repository.ClientProfileRepository,
	sessions session.Store,
	auditService service.AuditService,
	sessionTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		clientRepo:       clientRepo,
		sessions:         sessions,
		auditService:     auditService,
		sessionTTL:       sessionTTL,
	}
}

func (u *authUsecase) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(tx, registerAccountFields{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Sex:       req.Sex,
		CPF:       req.CPF,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		Address:   req.Address,
	}, entity.UserTypeProfessional)
	if err != nil {
		return nil, err
	}

	active := true
	profile := &entity.ProfessionalProfile{
		UserID:             user.ID,
		RegistrationNumber: req.RegistrationNumber,
		Specialty:          req.Specialty,
		Qualifications:     req.Qualifications,
		ExperienceYears:    req.ExperienceYears,
		Clinic:             req.Clinic,
		ScheduleNotes:      req.ScheduleNotes,
		IsActive:           &active,
	}

	if err := u.professionalRepo.Create(tx, profile); err != nil {
		if isDuplicateKeyError(err, "registration_number") {
			return nil, ErrRegistrationAlreadyExists
		}
		u.log.Warnf("Failed to create professional profile: %+v", err)
		return nil, err
	}

	user.ProfessionalProfile = profile

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionProfessionalRegister, "user", user.ID.String(), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Audit failures never fail the registration
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) RegisterClient(ctx context.Context, req *dto.RegisterClientRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.createUser(tx, registerAccountFields{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Sex:       req.Sex,
		CPF:       req.CPF,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		Address:   req.Address,
	}, entity.UserTypeClient)
	if err != nil {
		return nil, err
	}

	active := true
	profile := &entity.ClientProfile{
		UserID:         user.ID,
		GuardianName:   req.GuardianName,
		Notes:          req.Notes,
		MedicalHistory: req.MedicalHistory,
		Allergies:      req.Allergies,
		Medications:    req.Medications,
		IsActive:       &active,
	}

	if err := u.clientRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create client profile: %+v", err)
		return nil, err
	}

	user.ClientProfile = profile

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionClientRegister, "user", user.ID.String(), converter.UserToResponse(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

type registerAccountFields struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Sex       string
	CPF       string
	BirthDate string
	Phone     string
	Address   string
}

// createUser creates the account half of a registration inside tx.
// Uniqueness is left to the database constraints so concurrent
// registrations cannot race a check-then-insert.
func (u *authUsecase) createUser(tx *gorm.DB, fields registerAccountFields, userType string) (*entity.User, error) {
	birthDate, err := parseBirthDate(fields.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(fields.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		Username:  fields.Username,
		Email:     fields.Email,
		Password:  string(hashedPassword),
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
		UserType:  userType,
		Sex:       fields.Sex,
		CPF:       fields.CPF,
		BirthDate: birthDate,
		Phone:     fields.Phone,
		Address:   fields.Address,
		IsActive:  &active,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "cpf") {
			return nil, ErrCPFAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		// Same sentinel as a bad password so the response does not leak
		// whether the username exists.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrAccountInactive
	}

	token, err := u.sessions.Issue(ctx, user)
	if err != nil {
		u.log.Warnf("Failed to issue session: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogAction(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(u.sessionTTL.Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	// Revocation is idempotent: an unknown or already revoked token is a no-op.
	if err := u.sessions.Revoke(ctx, token); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
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

func (u *authUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
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
	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionUserUpdate, "user", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

type accountUpdateFields struct {
	Email     string
	FirstName string
	LastName  string
	Sex       string
	BirthDate string
	Phone     string
	Address   string
}

// applyAccountUpdate mutates the fields an account owner may change.
// Username, CPF and user type stay as set at registration.
func applyAccountUpdate(user *entity.User, fields accountUpdateFields) error {
	if fields.Email != "" {
		user.Email = fields.Email
	}
	if fields.FirstName != "" {
		user.FirstName = fields.FirstName
	}
	if fields.LastName != "" {
		user.LastName = fields.LastName
	}
	if fields.Sex != "" {
		user.Sex = fields.Sex
	}
	if fields.BirthDate != "" {
		birthDate, err := parseBirthDate(fields.BirthDate)
		if err != nil {
			return ErrInvalidDateFormat
		}
		user.BirthDate = birthDate
	}
	if fields.Phone != "" {
		user.Phone = fields.Phone
	}
	if fields.Address != "" {
		user.Address = fields.Address
	}
	return nil
}

func parseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	birthDate, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &birthDate, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
