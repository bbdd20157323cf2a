package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"
	"skywatch-service/pkg/geo"
	"skywatch-service/pkg/logger"
	"skywatch-service/pkg/metrics"
)

// CollisionDetector periodically evaluates all airborne aircraft pairs for
// unsafe proximity. Overlap policy: skip-if-busy — a timer tick that arrives
// while a cycle is still running is dropped, bounding resource use.
type CollisionDetector struct {
	positions repository.PositionRepository
	alerts    repository.AlertRepository
	logger    logger.Logger
	metrics   *metrics.Metrics

	safeDistanceKm float64
	safeAltDiffFt  float64
	interval       time.Duration

	busy     int32
	stopOnce sync.Once
	stop     chan struct{}
}

// NewCollisionDetector creates a new collision detector
func NewCollisionDetector(
	positions repository.PositionRepository,
	alerts repository.AlertRepository,
	safeDistanceKm float64,
	safeAltDiffFt float64,
	interval time.Duration,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *CollisionDetector {
	return &CollisionDetector{
		positions:      positions,
		alerts:         alerts,
		safeDistanceKm: safeDistanceKm,
		safeAltDiffFt:  safeAltDiffFt,
		interval:       interval,
		logger:         logger,
		metrics:        metrics,
		stop:           make(chan struct{}),
	}
}

// Start launches the periodic evaluation loop. It returns immediately;
// the loop runs until Stop is called or ctx is cancelled.
func (d *CollisionDetector) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		d.logger.Info("Collision detector started", "interval", d.interval)
		for {
			select {
			case <-ctx.Done():
				d.logger.Info("Collision detector stopped")
				return
			case <-d.stop:
				d.logger.Info("Collision detector stopped")
				return
			case <-ticker.C:
				d.runCycle(ctx)
			}
		}
	}()
}

// Stop halts the periodic loop. Idempotent; in-flight cycles finish but no
// further cycles are scheduled.
func (d *CollisionDetector) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
}

func (d *CollisionDetector) runCycle(ctx context.Context) {
	if !atomic.CompareAndSwapInt32(&d.busy, 0, 1) {
		d.metrics.SkippedCycles.WithLabelValues("collision").Inc()
		d.logger.Warn("Collision cycle skipped, previous cycle still running")
		return
	}
	defer atomic.StoreInt32(&d.busy, 0)

	start := time.Now()
	alerts, err := d.EvaluateCollisions(ctx)
	d.metrics.CycleDuration.WithLabelValues("collision").Observe(time.Since(start).Seconds())
	d.metrics.DetectionCycles.WithLabelValues("collision").Inc()

	if err != nil {
		// transient failure: abort this cycle, the next tick retries
		d.metrics.ErrorsCount.WithLabelValues("collision_cycle").Inc()
		d.logger.Error("Collision cycle failed", "error", err)
		return
	}
	if len(alerts) > 0 {
		d.logger.Info("Collision cycle produced alerts", "count", len(alerts))
	}
}

// EvaluateCollisions compares every unordered pair of airborne aircraft and
// stores an alert for each unsafe pair. Any read or store error aborts the
// cycle and returns no alerts.
func (d *CollisionDetector) EvaluateCollisions(ctx context.Context) ([]entity.CollisionAlert, error) {
	states, err := d.positions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot positions: %w", err)
	}

	airborne := make([]entity.AircraftState, 0, len(states))
	for _, s := range states {
		if !s.OnGround {
			airborne = append(airborne, s)
		}
	}
	if len(airborne) < 2 {
		return []entity.CollisionAlert{}, nil
	}

	alerts := []entity.CollisionAlert{}
	now := time.Now()
	for i := 0; i < len(airborne); i++ {
		for j := i + 1; j < len(airborne); j++ {
			a, b := &airborne[i], &airborne[j]

			distKm := geo.DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
			altDiff := math.Abs(a.Altitude - b.Altitude)
			if distKm >= d.safeDistanceKm || altDiff >= d.safeAltDiffFt {
				continue
			}

			alert := entity.CollisionAlert{
				ID:             fmt.Sprintf("%s-%s-%d", a.Callsign, b.Callsign, now.UnixMilli()),
				Callsign1:      a.Callsign,
				Callsign2:      b.Callsign,
				DistanceKm:     distKm,
				AltitudeDiffFt: altDiff,
				Severity:       collisionSeverity(distKm, altDiff),
				Aircraft1:      entity.AircraftSnapshot{Latitude: a.Latitude, Longitude: a.Longitude, Altitude: a.Altitude},
				Aircraft2:      entity.AircraftSnapshot{Latitude: b.Latitude, Longitude: b.Longitude, Altitude: b.Altitude},
				Timestamp:      now,
			}

			if err := d.alerts.StoreCollision(ctx, &alert); err != nil {
				return nil, fmt.Errorf("failed to store collision alert: %w", err)
			}
			d.metrics.AlertsGenerated.WithLabelValues(entity.CategoryCollision, alert.Severity).Inc()
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

// collisionSeverity applies the tiered thresholds, most severe first
func collisionSeverity(distKm, altDiffFt float64) string {
	switch {
	case distKm < 2 && altDiffFt < 500:
		return entity.SeverityCritical
	case distKm < 3 && altDiffFt < 700:
		return entity.SeverityHigh
	default:
		return entity.SeverityMedium
	}
}
