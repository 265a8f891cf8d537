package usecase

import (
	"context"
	"errors"
	"testing"

	"fisio-connect-api/internal/delivery/dto"

	"github.com/google/uuid"
)

func registerClientNamed(t *testing.T, env *testEnv, username, cpf, firstName string) *dto.UserResponse {
	t.Helper()

	req := clientRequest(username, cpf)
	req.FirstName = firstName

	resp, err := env.auth.RegisterClient(context.Background(), req)
	if err != nil {
		t.Fatalf("failed to register client %s: %v", username, err)
	}
	return resp
}

func TestGetAllClientsOrderedByName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerClientNamed(t, env, "rafael.costa", "529.982.247-25", "Rafael")
	registerClientNamed(t, env, "diego.alves", "168.995.350-09", "Diego")

	list, err := env.clients.GetAllClients(ctx)
	if err != nil {
		t.Fatalf("GetAllClients failed: %v", err)
	}

	if list.Total != 2 {
		t.Fatalf("got %d clients, want 2", list.Total)
	}
	if list.Clients[0].FullName != "Diego Lima" || list.Clients[1].FullName != "Rafael Lima" {
		t.Errorf("unexpected order: %q, %q", list.Clients[0].FullName, list.Clients[1].FullName)
	}
}

func TestDeactivateClientHidesFromListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	diego := registerClientNamed(t, env, "diego.alves", "529.982.247-25", "Diego")
	registerClientNamed(t, env, "rafael.costa", "168.995.350-09", "Rafael")

	if _, err := env.clients.DeactivateClient(ctx, diego.ID); err != nil {
		t.Fatalf("DeactivateClient failed: %v", err)
	}

	list, err := env.clients.GetAllClients(ctx)
	if err != nil {
		t.Fatalf("GetAllClients failed: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("got %d clients after deactivation, want 1", list.Total)
	}
	if list.Clients[0].Username != "rafael.costa" {
		t.Errorf("got %q in listing, want %q", list.Clients[0].Username, "rafael.costa")
	}

	if _, err := env.clients.ReactivateClient(ctx, diego.ID); err != nil {
		t.Fatalf("ReactivateClient failed: %v", err)
	}
	list, err = env.clients.GetAllClients(ctx)
	if err != nil {
		t.Fatalf("GetAllClients failed: %v", err)
	}
	if list.Total != 2 {
		t.Errorf("got %d clients after reactivation, want 2", list.Total)
	}
}

func TestUpdateClient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	diego := registerClientNamed(t, env, "diego.alves", "529.982.247-25", "Diego")

	updated, err := env.clients.UpdateClient(ctx, diego.ID, &dto.UpdateClientRequest{
		Allergies:   "Dipirona",
		Medications: "Ibuprofeno 400mg",
	})
	if err != nil {
		t.Fatalf("UpdateClient failed: %v", err)
	}

	if updated.Allergies != "Dipirona" {
		t.Errorf("got allergies %q, want %q", updated.Allergies, "Dipirona")
	}
	if updated.Medications != "Ibuprofeno 400mg" {
		t.Errorf("got medications %q, want %q", updated.Medications, "Ibuprofeno 400mg")
	}
	// Omitted fields keep their values
	if updated.MedicalHistory != "Lesao no joelho em 2020" {
		t.Errorf("got medical history %q", updated.MedicalHistory)
	}
}

func TestGetClientNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.GetClient(context.Background(), uuid.New())
	if !errors.Is(err, ErrClientNotFound) {
		t.Errorf("got %v, want ErrClientNotFound", err)
	}
}

func TestDeleteClientRemovesAccount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	diego := registerClientNamed(t, env, "diego.alves", "529.982.247-25", "Diego")

	if err := env.clients.DeleteClient(ctx, diego.ID); err != nil {
		t.Fatalf("DeleteClient failed: %v", err)
	}
	if _, err := env.clients.GetClient(ctx, diego.ID); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("got %v after delete, want ErrClientNotFound", err)
	}
	if _, err := env.auth.GetProfile(ctx, diego.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("got %v after delete, want ErrUserNotFound", err)
	}
}
