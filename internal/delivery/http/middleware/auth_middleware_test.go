package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fisio-connect-api/internal/domain/entity"
	"fisio-connect-api/internal/session"
	"fisio-connect-api/pkg/jwt"

	"github.com/google/uuid"
)

type fakeSessionStore struct {
	claims map[string]*jwt.Claims
	err    error
}

func (s *fakeSessionStore) Issue(ctx context.Context, user *entity.User) (string, error) {
	return "", nil
}

func (s *fakeSessionStore) Validate(ctx context.Context, token string) (*jwt.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	claims, ok := s.claims[token]
	if !ok {
		return nil, session.ErrInvalidSession
	}
	return claims, nil
}

func (s *fakeSessionStore) Revoke(ctx context.Context, token string) error {
	return nil
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&fakeSessionStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)

	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without credentials")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(&fakeSessionStore{})

	for _, header := range []string{"Token abc", "Bearer", "Bearer abc def"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
		req.Header.Set("Authorization", header)

		m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("handler must not run for header %q", header)
		})).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: got status %d, want %d", header, rec.Code, http.StatusUnauthorized)
		}
	}
}

func TestAuthenticateRevokedSession(t *testing.T) {
	m := NewAuthMiddleware(&fakeSessionStore{err: session.ErrSessionRevoked})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer revoked-token")

	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with a revoked session")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthenticatePopulatesContext(t *testing.T) {
	userID := uuid.New()
	store := &fakeSessionStore{
		claims: map[string]*jwt.Claims{
			"valid-token": {UserID: userID, Username: "ana.souza", IsStaff: true},
		},
	}
	m := NewAuthMiddleware(store)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	var called bool
	m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		gotID, ok := GetUserIDFromContext(r.Context())
		if !ok || gotID != userID {
			t.Errorf("got user ID %v (ok=%v), want %v", gotID, ok, userID)
		}
		username, ok := GetUsernameFromContext(r.Context())
		if !ok || username != "ana.souza" {
			t.Errorf("got username %q (ok=%v)", username, ok)
		}
		isStaff, ok := GetIsStaffFromContext(r.Context())
		if !ok || !isStaff {
			t.Errorf("got staff flag %v (ok=%v)", isStaff, ok)
		}
		token, ok := GetTokenFromContext(r.Context())
		if !ok || token != "valid-token" {
			t.Errorf("got token %q (ok=%v)", token, ok)
		}
	})).ServeHTTP(rec, req)

	if !called {
		t.Fatal("expected the handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("got status %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRequireStaff(t *testing.T) {
	run := func(ctx context.Context) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil).WithContext(ctx)
		RequireStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rec, req)
		return rec
	}

	// No staff flag in context at all
	if rec := run(context.Background()); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing flag: got status %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	// Authenticated but not staff
	ctx := context.WithValue(context.Background(), IsStaffKey, false)
	if rec := run(ctx); rec.Code != http.StatusForbidden {
		t.Errorf("non-staff: got status %d, want %d", rec.Code, http.StatusForbidden)
	}

	// Staff passes through
	ctx = context.WithValue(context.Background(), IsStaffKey, true)
	if rec := run(ctx); rec.Code != http.StatusOK {
		t.Errorf("staff: got status %d, want %d", rec.Code, http.StatusOK)
	}
}
