package usecase

import (
	"context"
	"errors"
	"testing"

	"fisio-connect-api/internal/delivery/dto"
	"fisio-connect-api/internal/domain/entity"
)

func TestGetAllAuditLogs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerProfessionalNamed(t, env, "ana.souza", "529.982.247-25", "Ana", "Ortopedia")
	if _, err := env.auth.Login(ctx, &dto.LoginRequest{Username: "ana.souza", Password: "s3nha-segura"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	list, err := env.audits.GetAllAuditLogs(ctx)
	if err != nil {
		t.Fatalf("GetAllAuditLogs failed: %v", err)
	}

	if list.Total != 2 {
		t.Fatalf("got %d audit entries, want 2", list.Total)
	}

	actions := map[string]bool{}
	for _, l := range list.Logs {
		actions[l.Action] = true
	}
	if !actions[entity.AuditActionProfessionalRegister] {
		t.Error("expected a registration entry in the trail")
	}
	if !actions[entity.AuditActionUserLogin] {
		t.Error("expected a login entry in the trail")
	}
}

func TestGetAuditLogByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerClientNamed(t, env, "diego.alves", "529.982.247-25", "Diego")

	list, err := env.audits.GetAllAuditLogs(ctx)
	if err != nil {
		t.Fatalf("GetAllAuditLogs failed: %v", err)
	}
	if list.Total == 0 {
		t.Fatal("expected at least one audit entry")
	}

	entry, err := env.audits.GetAuditLog(ctx, list.Logs[0].ID)
	if err != nil {
		t.Fatalf("GetAuditLog failed: %v", err)
	}
	if entry.Action != entity.AuditActionClientRegister {
		t.Errorf("got action %q, want %q", entry.Action, entity.AuditActionClientRegister)
	}
	if entry.Metadata == nil {
		t.Error("expected create metadata on the entry")
	}
}

func TestGetAuditLogNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.audits.GetAuditLog(context.Background(), 424242)
	if !errors.Is(err, ErrAuditLogNotFound) {
		t.Errorf("got %v, want ErrAuditLogNotFound", err)
	}
}
