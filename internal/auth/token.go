package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "files-manager/pkg/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenService issues and resolves opaque session tokens backed by Redis.
// A token is a fresh uuid mapped to the user id under auth_<token> with a
// TTL; clients present it in the X-Token header.
type TokenService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenService(rdb *redis.Client, ttl time.Duration) *TokenService {
	return &TokenService{rdb: rdb, ttl: ttl}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.New().String()

	if err := s.rdb.Set(ctx, tokenKeyPrefix+token, userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf(errFailedStoreTokenFmt, err)
	}

	return token, nil
}

func (s *TokenService) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.rdb.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, apperrors.Unauthorized(msgUnauthorized)
		}
		return uuid.Nil, fmt.Errorf(errFailedLookupTokenFmt, err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, apperrors.Unauthorized(msgUnauthorized)
	}

	return userID, nil
}

func (s *TokenService) Revoke(ctx context.Context, token string) error {
	removed, err := s.rdb.Del(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf(errFailedRevokeTokenFmt, err)
	}

	if removed == 0 {
		return apperrors.Unauthorized(msgUnauthorized)
	}

	return nil
}
