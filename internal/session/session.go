// Package session implements cookie-token sessions on Redis. The
// Manager interface is the only capability the HTTP layer needs: map a
// bearer token to an authenticated user id.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

type Manager interface {
	Create(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error
}

type RedisManager struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisManager(client redis.Cmdable, ttl time.Duration) *RedisManager {
	return &RedisManager{
		client: client,
		ttl:    ttl,
	}
}

func (m *RedisManager) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	if err := m.client.Set(ctx, keyPrefix+token, userID, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (m *RedisManager) Resolve(ctx context.Context, token string) (int64, error) {
	val, err := m.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse session value: %w", err)
	}

	// Sliding expiration: every authenticated request extends the
	// session.
	_ = m.client.Expire(ctx, keyPrefix+token, m.ttl).Err()

	return userID, nil
}

func (m *RedisManager) Destroy(ctx context.Context, token string) error {
	if err := m.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
