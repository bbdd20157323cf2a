package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"
	"skywatch-service/pkg/logger"
)

// listWorkers bounds the registry fan-out when joining the whole fleet
const listWorkers = 8

// FlightAggregator assembles composite flight views from the position store
// and the gate/schedule registries. Views are computed per query and never
// cached. Registry lookups run under a bounded timeout; a failed lookup
// degrades the view instead of failing the query.
type FlightAggregator struct {
	positions repository.PositionRepository
	gates     repository.GateRepository
	schedules repository.ScheduleRepository
	logger    logger.Logger

	registryTimeout time.Duration
}

// NewFlightAggregator creates a new flight aggregator
func NewFlightAggregator(
	positions repository.PositionRepository,
	gates repository.GateRepository,
	schedules repository.ScheduleRepository,
	registryTimeout time.Duration,
	logger logger.Logger,
) *FlightAggregator {
	return &FlightAggregator{
		positions:       positions,
		gates:           gates,
		schedules:       schedules,
		registryTimeout: registryTimeout,
		logger:          logger,
	}
}

// GetFlight builds the composite view for one identifier. With no live
// position it falls back to a schedule-only view with status "scheduled";
// if the identifier is unknown everywhere it returns (nil, nil).
func (fa *FlightAggregator) GetFlight(ctx context.Context, identifier string) (*entity.FlightView, error) {
	state, err := fa.positions.Get(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to read position: %w", err)
	}

	if state == nil {
		schedule := fa.lookupSchedule(ctx, identifier, "")
		if schedule == nil {
			return nil, nil
		}
		return &entity.FlightView{
			Callsign: identifier,
			Schedule: schedule,
			Status:   entity.StatusScheduled,
		}, nil
	}

	view := fa.buildView(ctx, state)
	return view, nil
}

// ListLiveFlights builds views for every currently tracked aircraft.
// Registry joins fan out across a bounded worker pool.
func (fa *FlightAggregator) ListLiveFlights(ctx context.Context) ([]entity.FlightView, error) {
	states, err := fa.positions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	views := make([]entity.FlightView, len(states))
	var wg sync.WaitGroup
	sem := make(chan struct{}, listWorkers)

	for i := range states {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			views[i] = *fa.buildView(ctx, &states[i])
		}(i)
	}
	wg.Wait()

	sort.Slice(views, func(i, j int) bool {
		return views[i].Callsign < views[j].Callsign
	})
	return views, nil
}

// ListByTerminal builds views for flights assigned to gates of one terminal
func (fa *FlightAggregator) ListByTerminal(ctx context.Context, terminal string) ([]entity.FlightView, error) {
	rctx, cancel := context.WithTimeout(ctx, fa.registryTimeout)
	defer cancel()

	assignments, err := fa.gates.ListByTerminal(rctx, terminal)
	if err != nil {
		return nil, fmt.Errorf("failed to list terminal gates: %w", err)
	}

	views := make([]entity.FlightView, 0, len(assignments))
	for i := range assignments {
		view, err := fa.GetFlight(ctx, assignments[i].FlightID)
		if err != nil {
			return nil, err
		}
		if view == nil {
			// gate holds a flight the registries no longer know
			continue
		}
		view.Gate = assignments[i].Gate
		view.Terminal = assignments[i].Terminal
		views = append(views, *view)
	}
	return views, nil
}

// GetSummary computes fleet and gate-occupancy counts, fresh per call
func (fa *FlightAggregator) GetSummary(ctx context.Context) (*entity.FleetSummary, error) {
	states, err := fa.positions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	summary := &entity.FleetSummary{TotalTracked: len(states)}
	for _, s := range states {
		if s.OnGround {
			summary.OnGround++
		} else {
			summary.InFlight++
		}
	}

	rctx, cancel := context.WithTimeout(ctx, fa.registryTimeout)
	defer cancel()

	occupied, err := fa.gates.CountOccupied(rctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied gates: %w", err)
	}
	total, err := fa.gates.CountTotal(rctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count gates: %w", err)
	}
	summary.GatesOccupied = occupied
	summary.GatesAvailable = total - occupied

	return summary, nil
}

// buildView joins one live position with the registries. Lookup failures
// degrade to a view without gate or schedule.
func (fa *FlightAggregator) buildView(ctx context.Context, state *entity.AircraftState) *entity.FlightView {
	view := &entity.FlightView{
		Callsign: state.Callsign,
		Position: state,
	}

	rctx, cancel := context.WithTimeout(ctx, fa.registryTimeout)
	defer cancel()

	gate, err := fa.gates.GetByFlight(rctx, state.Callsign)
	if err != nil {
		fa.logger.Warn("Gate lookup failed", "callsign", state.Callsign, "error", err)
	} else if gate != nil {
		view.Gate = gate.Gate
		view.Terminal = gate.Terminal
	}

	view.Schedule = fa.lookupSchedule(ctx, state.Callsign, state.Callsign)

	switch {
	case state.OnGround:
		view.Status = entity.StatusOnGround
	case view.Schedule != nil && view.Schedule.Status != "":
		view.Status = view.Schedule.Status
	default:
		view.Status = entity.StatusInFlight
	}
	return view
}

// lookupSchedule resolves a schedule by flight number, then by aircraft
// registration. Failures degrade to no schedule.
func (fa *FlightAggregator) lookupSchedule(ctx context.Context, flightNumber, registration string) *entity.FlightSchedule {
	rctx, cancel := context.WithTimeout(ctx, fa.registryTimeout)
	defer cancel()

	schedule, err := fa.schedules.FindByFlightNumber(rctx, flightNumber)
	if err != nil {
		fa.logger.Warn("Schedule lookup failed", "flightNumber", flightNumber, "error", err)
		return nil
	}
	if schedule != nil || registration == "" {
		return schedule
	}

	schedule, err = fa.schedules.FindByRegistration(rctx, registration)
	if err != nil {
		fa.logger.Warn("Schedule registration lookup failed", "registration", registration, "error", err)
		return nil
	}
	return schedule
}
