package repository

import (
	"context"

	"skywatch-service/internal/domain/entity"
)

// PositionRepository defines the interface for the time-bounded position store.
// A missing or expired entry is reported as (nil, nil), not as an error.
type PositionRepository interface {
	Upsert(ctx context.Context, state *entity.AircraftState) error
	Get(ctx context.Context, callsign string) (*entity.AircraftState, error)
	ListAll(ctx context.Context) ([]entity.AircraftState, error)
}
