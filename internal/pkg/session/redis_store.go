package session

import (
	"context"
	"fmt"
	"time"
)

const (
	keyPrefix        = "quickhaul:session:"
	accountKeyPrefix = "quickhaul:account-sessions:"
)

// RedisStore хранит только id живых сессий, сам токен не сохраняется.
type RedisStore struct {
	client redisClient
}

func NewRedisStore(client redisClient) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// accountSessionsKey - множество id сессий аккаунта, нужно для массового отзыва.
func accountSessionsKey(accountID string) string {
	return accountKeyPrefix + accountID
}

func (s *RedisStore) Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(sessionID), accountID, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	indexKey := accountSessionsKey(accountID)
	if err := s.client.SAdd(ctx, indexKey, sessionID).Err(); err != nil {
		return fmt.Errorf("redis sadd account session: %w", err)
	}
	// индекс живёт столько же, сколько самая свежая сессия
	if err := s.client.Expire(ctx, indexKey, ttl).Err(); err != nil {
		return fmt.Errorf("redis expire account sessions: %w", err)
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists session: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

// DeleteAccountSessions отзывает все сессии аккаунта, кроме exceptSessionID.
// Пустой exceptSessionID отзывает все.
func (s *RedisStore) DeleteAccountSessions(ctx context.Context, accountID, exceptSessionID string) error {
	indexKey := accountSessionsKey(accountID)

	sessionIDs, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("redis smembers account sessions: %w", err)
	}

	keys := make([]string, 0, len(sessionIDs))
	members := make([]any, 0, len(sessionIDs))
	for _, sessionID := range sessionIDs {
		if sessionID == exceptSessionID {
			continue
		}
		keys = append(keys, sessionKey(sessionID))
		members = append(members, sessionID)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del account sessions: %w", err)
	}
	if err := s.client.SRem(ctx, indexKey, members...).Err(); err != nil {
		return fmt.Errorf("redis srem account sessions: %w", err)
	}
	return nil
}
