package usecase

import (
	"context"
	"errors"
	"testing"

	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"

	"github.com/google/uuid"
)

func registerProfessionalNamed(t *testing.T, env *testEnv, username, cpf, firstName, specialty string) *dto.UserResponse {
	t.Helper()

	req := professionalRequest(username, cpf)
	req.FirstName = firstName
	req.Specialty = specialty

	resp, err := env.auth.RegisterProfessional(context.Background(), req)
	if err != nil {
		t.Fatalf("failed to register professional %s: %v", username, err)
	}
	return resp
}

func TestGetAllProfessionalsOrderedByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerProfessionalNamed(t, env, "carla.melo", "529.982.247-25", "Carla", "Ortopedia")
	registerProfessionalNamed(t, env, "ana.souza", "168.995.350-09", "Ana", "Pediatria")
	registerProfessionalNamed(t, env, "bruno.lima", "111.444.777-35", "Bruno", "Neurologia")

	list, err := env.pros.GetAllProfessionals(ctx, "")
	if err != nil {
		t.Fatalf("GetAllProfessionals failed: %v", err)
	}

	if list.Total != 3 {
		t.Fatalf("got %d professionals, want 3", list.Total)
	}
	wantOrder := []string{"Ana Souza", "Bruno Souza", "Carla Souza"}
	for i, want := range wantOrder {
		if list.Professionals[i].FullName != want {
			t.Errorf("position %d: got %q, want %q", i, list.Professionals[i].FullName, want)
		}
	}
}

func TestGetAllProfessionalsSpecialtyFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerProfessionalNamed(t, env, "ana.souza", "529.982.247-25", "Ana", "Ortopedia")
	registerProfessionalNamed(t, env, "bruno.lima", "168.995.350-09", "Bruno", "Fisioterapia Ortopedica")
	registerProfessionalNamed(t, env, "carla.melo", "111.444.777-35", "Carla", "Pediatria")

	// Case-insensitive substring match
	list, err := env.pros.GetAllProfessionals(ctx, "ORTO")
	if err != nil {
		t.Fatalf("GetAllProfessionals failed: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("got %d professionals for %q, want 2", list.Total, "ORTO")
	}
	for _, p := range list.Professionals {
		if p.Specialty != "Ortopedia" && p.Specialty != "Fisioterapia Ortopedica" {
			t.Errorf("unexpected specialty in filtered list: %q", p.Specialty)
		}
	}

	// No match yields an empty list, not an error
	list, err = env.pros.GetAllProfessionals(ctx, "neuro")
	if err != nil {
		t.Fatalf("GetAllProfessionals failed: %v", err)
	}
	if list.Total != 0 {
		t.Errorf("got %d professionals for %q, want 0", list.Total, "neuro")
	}
}

func TestDeactivateProfessionalHidesFromListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana := registerProfessionalNamed(t, env, "ana.souza", "529.982.247-25", "Ana", "Ortopedia")
	registerProfessionalNamed(t, env, "bruno.lima", "168.995.350-09", "Bruno", "Pediatria")

	resp, err := env.pros.DeactivateProfessional(ctx, ana.ID)
	if err != nil {
		t.Fatalf("DeactivateProfessional failed: %v", err)
	}
	if resp.IsActive == nil || *resp.IsActive {
		t.Error("expected the profile to be inactive")
	}

	list, err := env.pros.GetAllProfessionals(ctx, "")
	if err != nil {
		t.Fatalf("GetAllProfessionals failed: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("got %d professionals after deactivation, want 1", list.Total)
	}
	if list.Professionals[0].Username != "bruno.lima" {
		t.Errorf("got %q in listing, want %q", list.Professionals[0].Username, "bruno.lima")
	}

	// Deactivation hides the profile; the record itself survives
	if _, err := env.pros.GetProfessional(ctx, ana.ID); err != nil {
		t.Errorf("GetProfessional after deactivation failed: %v", err)
	}

	if _, err := env.pros.ReactivateProfessional(ctx, ana.ID); err != nil {
		t.Fatalf("ReactivateProfessional failed: %v", err)
	}
	list, err = env.pros.GetAllProfessionals(ctx, "")
	if err != nil {
		t.Fatalf("GetAllProfessionals failed: %v", err)
	}
	if list.Total != 2 {
		t.Errorf("got %d professionals after reactivation, want 2", list.Total)
	}
}

func TestUpdateProfessional(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana := registerProfessionalNamed(t, env, "ana.souza", "529.982.247-25", "Ana", "Ortopedia")

	years := 12
	updated, err := env.pros.UpdateProfessional(ctx, ana.ID, &dto.UpdateProfessionalRequest{
		Specialty:       "Neurologia",
		ExperienceYears: &years,
	})
	if err != nil {
		t.Fatalf("UpdateProfessional failed: %v", err)
	}

	if updated.Specialty != "Neurologia" {
		t.Errorf("got specialty %q, want %q", updated.Specialty, "Neurologia")
	}
	if updated.ExperienceYears != 12 {
		t.Errorf("got experience %d, want 12", updated.ExperienceYears)
	}
	// Omitted fields keep their values
	if updated.RegistrationNumber != "CREFITO-ana.souza" {
		t.Errorf("got registration number %q, want %q", updated.RegistrationNumber, "CREFITO-ana.souza")
	}
}

func TestGetProfessionalNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.pros.GetProfessional(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("got %v, want ErrProfessionalNotFound", err)
	}
}

func TestDeleteProfessionalRemovesAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana := registerProfessionalNamed(t, env, "ana.souza", "529.982.247-25", "Ana", "Ortopedia")

	if err := env.pros.DeleteProfessional(ctx, ana.ID); err != nil {
		t.Fatalf("DeleteProfessional failed: %v", err)
	}

	if _, err := env.pros.GetProfessional(ctx, ana.ID); !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("got %v after delete, want ErrProfessionalNotFound", err)
	}
	if _, err := env.auth.GetProfile(ctx, ana.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("got %v after delete, want ErrUserNotFound", err)
	}

	// The profile follows the account via the cascade
	if n := countRows(t, env.db, &entity.ProfessionalProfile{}); n != 0 {
		t.Errorf("got %d profiles after delete, want 0", n)
	}

	if err := env.pros.DeleteProfessional(ctx, ana.ID); !errors.Is(err, ErrProfessionalNotFound) {
		t.Errorf("second delete: got %v, want ErrProfessionalNotFound", err)
	}
}
