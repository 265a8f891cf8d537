package usecase

import (
	"context"
	"testing"
)

func TestGetUserStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ana := registerProfessionalNamed(t, env, "ana.souza", "529.982.247-25", "Ana", "Ortopedia")
	registerProfessionalNamed(t, env, "bruno.lima", "168.995.350-09", "Bruno", "Pediatria")
	registerClientNamed(t, env, "diego.alves", "111.444.777-35", "Diego")
	rafael := registerClientNamed(t, env, "rafael.costa", "987.654.321-00", "Rafael")

	// One professional profile off, one whole account off
	if _, err := env.pros.DeactivateProfessional(ctx, ana.ID); err != nil {
		t.Fatalf("DeactivateProfessional failed: %v", err)
	}
	if _, err := env.users.DeactivateUser(ctx, rafael.ID); err != nil {
		t.Fatalf("DeactivateUser failed: %v", err)
	}

	stats, err := env.stats.GetUserStats(ctx)
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}

	if stats.TotalUsers != 4 {
		t.Errorf("got total users %d, want 4", stats.TotalUsers)
	}
	if stats.ActiveUsers != 3 {
		t.Errorf("got active users %d, want 3", stats.ActiveUsers)
	}
	if stats.InactiveUsers != 1 {
		t.Errorf("got inactive users %d, want 1", stats.InactiveUsers)
	}
	// Profile activity is counted independently of account activity
	if stats.ActiveProfessionals != 1 {
		t.Errorf("got active professionals %d, want 1", stats.ActiveProfessionals)
	}
	if stats.ActiveClients != 2 {
		t.Errorf("got active clients %d, want 2", stats.ActiveClients)
	}
}

func TestGetUserStatsEmpty(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.stats.GetUserStats(context.Background())
	if err != nil {
		t.Fatalf("GetUserStats failed: %v", err)
	}

	if stats.TotalUsers != 0 || stats.ActiveUsers != 0 || stats.InactiveUsers != 0 ||
		stats.ActiveProfessionals != 0 || stats.ActiveClients != 0 {
		t.Errorf("expected all counts to be zero, got %+v", stats)
	}
}
