package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"

	"github.com/go-redis/redis/v8"
)

const positionKeyPrefix = "skywatch:position:"

// RedisPositionRepository implements PositionRepository on Redis. Each
// aircraft owns one key holding its serialized state; every upsert rewrites
// the key and refreshes its TTL, so stale aircraft drop out passively.
type RedisPositionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPositionRepository creates a new Redis-backed position store
func NewRedisPositionRepository(client *redis.Client, ttl time.Duration) repository.PositionRepository {
	return &RedisPositionRepository{
		client: client,
		ttl:    ttl,
	}
}

// Upsert overwrites the aircraft's current-state slot and refreshes its TTL
func (r *RedisPositionRepository) Upsert(ctx context.Context, state *entity.AircraftState) error {
	if state.Callsign == "" {
		return fmt.Errorf("callsign is required")
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal aircraft state: %w", err)
	}

	if err := r.client.Set(ctx, positionKeyPrefix+state.Callsign, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store aircraft state: %w", err)
	}
	return nil
}

// Get returns the current state for a callsign, or (nil, nil) when the
// entry is absent or expired
func (r *RedisPositionRepository) Get(ctx context.Context, callsign string) (*entity.AircraftState, error) {
	val, err := r.client.Get(ctx, positionKeyPrefix+callsign).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get aircraft state: %w", err)
	}

	var state entity.AircraftState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal aircraft state: %w", err)
	}
	return &state, nil
}

// ListAll returns every non-expired aircraft state
func (r *RedisPositionRepository) ListAll(ctx context.Context) ([]entity.AircraftState, error) {
	var states []entity.AircraftState

	iter := r.client.Scan(ctx, 0, positionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		val, err := r.client.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			// expired between scan and get
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get aircraft state: %w", err)
		}

		var state entity.AircraftState
		if err := json.Unmarshal([]byte(val), &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal aircraft state: %w", err)
		}
		states = append(states, state)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan position keys: %w", err)
	}

	return states, nil
}
