package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"

	"github.com/go-redis/redis/v8"
)

const (
	alertKeyPrefix  = "skywatch:alert:"
	activeKeySuffix = ":active"
	alertsKeyPrefix = "skywatch:alerts:"
)

// RedisAlertRepository implements AlertRepository on Redis. Each alert is
// written twice: onto the per-category capped active list (LPUSH + LTRIM,
// insertion order defines recency) and, unless its severity is SAFE, as an
// individual key with an expiry that backs the history queries. An alert
// can fall off the active list before its key expires and vice versa; the
// two views are allowed to drift.
type RedisAlertRepository struct {
	client    *redis.Client
	ttl       time.Duration
	activeCap int64
}

// NewRedisAlertRepository creates a new Redis-backed alert ledger
func NewRedisAlertRepository(client *redis.Client, ttl time.Duration, activeCap int) repository.AlertRepository {
	return &RedisAlertRepository{
		client:    client,
		ttl:       ttl,
		activeCap: int64(activeCap),
	}
}

// StoreCollision appends a collision alert to the ledger
func (r *RedisAlertRepository) StoreCollision(ctx context.Context, alert *entity.CollisionAlert) error {
	return r.store(ctx, entity.CategoryCollision, alert.ID, alert.Severity, alert)
}

// StoreAltitude appends an altitude alert to the ledger. SAFE entries go to
// the active list only so they surface in live queries without entering
// long-lived history.
func (r *RedisAlertRepository) StoreAltitude(ctx context.Context, alert *entity.AltitudeAlert) error {
	return r.store(ctx, entity.CategoryAltitude, alert.ID, alert.Severity, alert)
}

func (r *RedisAlertRepository) store(ctx context.Context, category, id, severity string, alert interface{}) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	if severity != entity.SeveritySafe {
		key := alertKeyPrefix + category + ":" + id
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			return fmt.Errorf("failed to store alert: %w", err)
		}
	}

	listKey := alertsKeyPrefix + category + activeKeySuffix
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, listKey, data)
	pipe.LTrim(ctx, listKey, 0, r.activeCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push active alert: %w", err)
	}
	return nil
}

// ActiveCollisions returns the capped most-recent-first collision list
func (r *RedisAlertRepository) ActiveCollisions(ctx context.Context) ([]entity.CollisionAlert, error) {
	vals, err := r.listActive(ctx, entity.CategoryCollision)
	if err != nil {
		return nil, err
	}

	alerts := make([]entity.CollisionAlert, 0, len(vals))
	for _, val := range vals {
		var alert entity.CollisionAlert
		if err := json.Unmarshal([]byte(val), &alert); err != nil {
			return nil, fmt.Errorf("failed to unmarshal collision alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// ActiveAltitude returns the capped most-recent-first altitude list,
// SAFE entries included
func (r *RedisAlertRepository) ActiveAltitude(ctx context.Context) ([]entity.AltitudeAlert, error) {
	vals, err := r.listActive(ctx, entity.CategoryAltitude)
	if err != nil {
		return nil, err
	}

	alerts := make([]entity.AltitudeAlert, 0, len(vals))
	for _, val := range vals {
		var alert entity.AltitudeAlert
		if err := json.Unmarshal([]byte(val), &alert); err != nil {
			return nil, fmt.Errorf("failed to unmarshal altitude alert: %w", err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (r *RedisAlertRepository) listActive(ctx context.Context, category string) ([]string, error) {
	listKey := alertsKeyPrefix + category + activeKeySuffix
	vals, err := r.client.LRange(ctx, listKey, 0, r.activeCap-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read active alerts: %w", err)
	}
	return vals, nil
}

// CollisionHistory returns non-expired collision alerts, newest first
func (r *RedisAlertRepository) CollisionHistory(ctx context.Context, limit int) ([]entity.CollisionAlert, error) {
	vals, err := r.scanAlerts(ctx, entity.CategoryCollision)
	if err != nil {
		return nil, err
	}

	alerts := make([]entity.CollisionAlert, 0, len(vals))
	for _, val := range vals {
		var alert entity.CollisionAlert
		if err := json.Unmarshal([]byte(val), &alert); err != nil {
			return nil, fmt.Errorf("failed to unmarshal collision alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

// AltitudeHistory returns non-expired altitude alerts, newest first.
// SAFE entries never have individual keys, so they cannot appear here.
func (r *RedisAlertRepository) AltitudeHistory(ctx context.Context, limit int) ([]entity.AltitudeAlert, error) {
	vals, err := r.scanAlerts(ctx, entity.CategoryAltitude)
	if err != nil {
		return nil, err
	}

	alerts := make([]entity.AltitudeAlert, 0, len(vals))
	for _, val := range vals {
		var alert entity.AltitudeAlert
		if err := json.Unmarshal([]byte(val), &alert); err != nil {
			return nil, fmt.Errorf("failed to unmarshal altitude alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

func (r *RedisAlertRepository) scanAlerts(ctx context.Context, category string) ([]string, error) {
	var vals []string

	iter := r.client.Scan(ctx, 0, alertKeyPrefix+category+":*", 0).Iterator()
	for iter.Next(ctx) {
		val, err := r.client.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			// expired between scan and get
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get alert: %w", err)
		}
		vals = append(vals, val)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan alert keys: %w", err)
	}

	return vals, nil
}
