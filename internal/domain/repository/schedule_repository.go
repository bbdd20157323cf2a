package repository

import (
	"context"

	"skywatch-service/internal/domain/entity"
)

// ScheduleRepository defines the interface for schedule lookups.
// A flight with no schedule is reported as (nil, nil).
type ScheduleRepository interface {
	FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.FlightSchedule, error)
	FindByRegistration(ctx context.Context, registration string) (*entity.FlightSchedule, error)
}
