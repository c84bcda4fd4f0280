package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RefreshStore persists active refresh-token IDs per user. Each user
// keeps a set of valid JTIs; logout removes one, logout-all drops the
// whole set. A token whose JTI is absent is rejected even if its
// signature is still valid.
//
// Redis is the primary backend. Without a client the store falls back
// to an in-process map, same trade-off as the rate limiter's fallback:
// auth keeps working on a single instance, revocations don't survive a
// restart.
type RefreshStore struct {
	client *goredis.Client
	ttl    time.Duration

	mu    sync.Mutex
	local map[string]map[string]time.Time // userID -> jti -> expiry
}

var ErrRefreshRevoked = errors.New("refresh token is revoked or unknown")

func NewRefreshStore(client *goredis.Client, ttl time.Duration) *RefreshStore {
	return &RefreshStore{
		client: client,
		ttl:    ttl,
		local:  make(map[string]map[string]time.Time),
	}
}

func (s *RefreshStore) key(userID string) string {
	return "auth:refresh:" + userID
}

// Save registers a freshly issued refresh token JTI for the user
func (s *RefreshStore) Save(ctx context.Context, userID, jti string) error {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.local[userID] == nil {
			s.local[userID] = make(map[string]time.Time)
		}
		s.local[userID][jti] = time.Now().Add(s.ttl)
		return nil
	}

	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, s.key(userID), jti)
	pipe.Expire(ctx, s.key(userID), s.ttl)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("refresh store: save failed: %w", err)
	}
	return nil
}

// Validate checks that the JTI is still registered for the user
func (s *RefreshStore) Validate(ctx context.Context, userID, jti string) error {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		expiry, ok := s.local[userID][jti]
		if !ok {
			return ErrRefreshRevoked
		}
		if time.Now().After(expiry) {
			delete(s.local[userID], jti)
			return ErrRefreshRevoked
		}
		return nil
	}

	ok, err := s.client.SIsMember(ctx, s.key(userID), jti).Result()
	if err != nil {
		return fmt.Errorf("refresh store: lookup failed: %w", err)
	}
	if !ok {
		return ErrRefreshRevoked
	}
	return nil
}

// Revoke removes a single refresh token (logout)
func (s *RefreshStore) Revoke(ctx context.Context, userID, jti string) error {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.local[userID], jti)
		return nil
	}
	return s.client.SRem(ctx, s.key(userID), jti).Err()
}

// RevokeAll removes every refresh token for the user (logout-all)
func (s *RefreshStore) RevokeAll(ctx context.Context, userID string) error {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.local, userID)
		return nil
	}
	return s.client.Del(ctx, s.key(userID)).Err()
}
