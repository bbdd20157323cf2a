package repository

import (
	"context"

	"skywatch-service/internal/domain/entity"
)

// GateRepository defines the interface for gate-assignment lookups.
// A flight with no assignment is reported as (nil, nil).
type GateRepository interface {
	GetByFlight(ctx context.Context, flightID string) (*entity.GateAssignment, error)
	ListByTerminal(ctx context.Context, terminal string) ([]entity.GateAssignment, error)
	CountOccupied(ctx context.Context) (int64, error)
	CountTotal(ctx context.Context) (int64, error)
}
