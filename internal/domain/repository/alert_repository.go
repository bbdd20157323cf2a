package repository

import (
	"context"

	"skywatch-service/internal/domain/entity"
)

// AlertRepository defines the interface for the alert ledger. Every stored
// alert lands on a per-category capped most-recent-first active list; all
// except SAFE-severity entries are additionally stored individually with an
// expiry, backing the history queries. The two views may drift.
type AlertRepository interface {
	StoreCollision(ctx context.Context, alert *entity.CollisionAlert) error
	StoreAltitude(ctx context.Context, alert *entity.AltitudeAlert) error

	ActiveCollisions(ctx context.Context) ([]entity.CollisionAlert, error)
	ActiveAltitude(ctx context.Context) ([]entity.AltitudeAlert, error)

	CollisionHistory(ctx context.Context, limit int) ([]entity.CollisionAlert, error)
	AltitudeHistory(ctx context.Context, limit int) ([]entity.AltitudeAlert, error)
}
