package dto

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterProfessionalRequest registers an account plus its professional profile
type RegisterProfessionalRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Sex       string `json:"sex" validate:"required,oneof=M F O"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"omitempty,max=15"`
	Address   string `json:"address" validate:"omitempty"`

	RegistrationNumber string `json:"registration_number" validate:"required,max=20"`
	Specialty          string `json:"specialty" validate:"omitempty,max=100"`
	Qualifications     string `json:"qualifications" validate:"omitempty"`
	ExperienceYears    int    `json:"experience_years" validate:"gte=0"`
	Clinic             string `json:"clinic" validate:"omitempty,max=200"`
	ScheduleNotes      string `json:"schedule_notes" validate:"omitempty"`
}

// RegisterClientRequest registers an account plus its client profile
type RegisterClientRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Sex       string `json:"sex" validate:"required,oneof=M F O"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"omitempty,max=15"`
	Address   string `json:"address" validate:"omitempty"`

	GuardianName   string `json:"guardian_name" validate:"omitempty,max=200"`
	Notes          string `json:"notes" validate:"omitempty"`
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
	Allergies      string `json:"allergies" validate:"omitempty"`
	Medications    string `json:"medications" validate:"omitempty"`
}

// UpdateProfileRequest carries the self-service mutable account fields.
// Username, CPF and user type are immutable after registration.
type UpdateProfileRequest struct {
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Sex       string `json:"sex" validate:"omitempty,oneof=M F O"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"omitempty,max=15"`
	Address   string `json:"address" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}
