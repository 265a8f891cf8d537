package session

import (
	"context"
	"errors"

	"fisio-connect-api/internal/domain/entity"
	"fisio-connect-api/pkg/jwt"
)

var (
	ErrInvalidSession = errors.New("invalid or expired session")
	ErrSessionRevoked = errors.New("session has been revoked")
)

// Store manages session tokens bound 1:1 to a user. Issue has
// get-or-create semantics: while a token is live, re-issuing returns the
// same token. Revoke is idempotent; revoking an unknown token is a no-op.
type Store interface {
	Issue(ctx context.Context, user *entity.User) (string, error)
	Validate(ctx context.Context, token string) (*jwt.Claims, error)
	Revoke(ctx context.Context, token string) error
}
