package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingSetKey = "charges:pending"

// RedisStore keeps sessions as JSON blobs under session:<id> keys.
type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, baseTTL: ttl}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*State, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var state State
	if err2 := json.Unmarshal(data, &state); err2 != nil {
		return nil, fmt.Errorf("unmarshal session failed: %w", err2)
	}
	return &state, nil
}

func (r *RedisStore) Put(ctx context.Context, sessionID string, state *State) error {
	state.UpdatedAt = time.Now()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	// jitter spreads expiry so a burst of sessions does not age out at once
	jitter := time.Duration(rand.Intn(30)) * time.Minute
	if err := r.client.Set(ctx, sessionKey(sessionID), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) AddPendingCharge(ctx context.Context, sessionID, transactionID string) error {
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, pendingSetKey, transactionID)
	pipe.Set(ctx, chargeKey(transactionID), sessionID, r.baseTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis add pending charge failed: %w", err)
	}
	return nil
}

func (r *RedisStore) PendingCharges(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, pendingSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis pending charges failed: %w", err)
	}
	return ids, nil
}

func (r *RedisStore) RemovePendingCharge(ctx context.Context, transactionID string) error {
	if err := r.client.SRem(ctx, pendingSetKey, transactionID).Err(); err != nil {
		return fmt.Errorf("redis remove pending charge failed: %w", err)
	}
	return nil
}

func (r *RedisStore) SessionForCharge(ctx context.Context, transactionID string) (string, error) {
	sessionID, err := r.client.Get(ctx, chargeKey(transactionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis session for charge failed: %w", err)
	}
	return sessionID, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func chargeKey(transactionID string) string {
	return fmt.Sprintf("charge:%s", transactionID)
}
