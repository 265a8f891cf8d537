package cache

import (
	"context"
	"errors"
	"fmt"

	"fisio-connect-api/internal/domain/entity"
	"fisio-connect-api/internal/session"
	"fisio-connect-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
)

type redisSessionStore struct {
	client     *redis.Client
	jwtService *jwt.JWTService
}

// NewRedisSessionStore returns a session.Store backed by Redis. It keeps
// two keys per session: session:user:<id> holding the live token string,
// and session:token:<token_id> marking the token as not revoked.
func NewRedisSessionStore(client *redis.Client, jwtService *jwt.JWTService) session.Store {
	return &redisSessionStore{
		client:     client,
		jwtService: jwtService,
	}
}

func userKey(userID string) string {
	return fmt.Sprintf("session:user:%s", userID)
}

func tokenKey(tokenID string) string {
	return fmt.Sprintf("session:token:%s", tokenID)
}

func (s *redisSessionStore) Issue(ctx context.Context, user *entity.User) (string, error) {
	// Reuse the live token if one exists and still verifies.
	existing, err := s.client.Get(ctx, userKey(user.ID.String())).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	if err == nil {
		if _, verr := s.jwtService.ValidateToken(existing); verr == nil {
			return existing, nil
		}
	}

	token, tokenID, err := s.jwtService.GenerateToken(user.ID, user.Username, user.IsStaff)
	if err != nil {
		return "", err
	}

	ttl := s.jwtService.GetTTL()
	if err := s.client.Set(ctx, userKey(user.ID.String()), token, ttl).Err(); err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, tokenKey(tokenID), user.ID.String(), ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (s *redisSessionStore) Validate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, session.ErrInvalidSession
	}

	exists, err := s.client.Exists(ctx, tokenKey(claims.TokenID)).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, session.ErrSessionRevoked
	}

	return claims, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		// Unknown or expired tokens revoke to nothing.
		return nil
	}

	return s.client.Del(ctx, tokenKey(claims.TokenID), userKey(claims.UserID.String())).Err()
}
