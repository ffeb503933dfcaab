package services

import (
	"context"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/neurobridge-lms/internal/platform/logger"
)

// TokenRevocationStore remembers logged-out token ids until they would have
// expired anyway.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type memoryTokenStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryTokenStore() TokenRevocationStore {
	return &memoryTokenStore{revoked: map[string]time.Time{}, now: time.Now}
}

func (s *memoryTokenStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, exp := range s.revoked {
		if !exp.After(now) {
			delete(s.revoked, id)
		}
	}
	if until.After(now) {
		s.revoked[tokenID] = until
	}
	return nil
}

func (s *memoryTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.revoked[tokenID]
	return ok && exp.After(s.now()), nil
}

const revokedKeyPrefix = "lms:revoked:"

type redisTokenStore struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewRedisTokenStore(log *logger.Logger, rdb *goredis.Client) TokenRevocationStore {
	return &redisTokenStore{rdb: rdb, log: log.With("component", "RedisTokenStore")}
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return nil
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		s.log.Warn("revocation lookup failed", "error", err)
		return false, err
	}
	return n > 0, nil
}
