package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"
	"skywatch-service/pkg/logger"
	"skywatch-service/pkg/metrics"
)

// MessageOutsideZone is the alert message for low aircraft outside every
// airport zone
const MessageOutsideZone = "below safe altitude outside airport zone"

// AltitudeRiskResult is the outcome of one altitude-risk cycle: the alerts
// generated plus a snapshot of every monitored airborne aircraft.
type AltitudeRiskResult struct {
	Alerts            []entity.AltitudeAlert `json:"alerts"`
	MonitoredAircraft []entity.AircraftInfo  `json:"monitoredAircraft"`
}

// AltitudeDetector periodically classifies every airborne aircraft against
// the zone index and the minimum safe altitude. Overlap policy matches the
// collision detector: skip-if-busy.
type AltitudeDetector struct {
	positions repository.PositionRepository
	alerts    repository.AlertRepository
	zones     ZoneResolver
	logger    logger.Logger
	metrics   *metrics.Metrics

	minSafeAltitudeFt float64
	interval          time.Duration

	busy     int32
	stopOnce sync.Once
	stop     chan struct{}
}

// NewAltitudeDetector creates a new altitude risk detector
func NewAltitudeDetector(
	positions repository.PositionRepository,
	alerts repository.AlertRepository,
	zones ZoneResolver,
	minSafeAltitudeFt float64,
	interval time.Duration,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *AltitudeDetector {
	return &AltitudeDetector{
		positions:         positions,
		alerts:            alerts,
		zones:             zones,
		minSafeAltitudeFt: minSafeAltitudeFt,
		interval:          interval,
		logger:            logger,
		metrics:           metrics,
		stop:              make(chan struct{}),
	}
}

// Start launches the periodic evaluation loop
func (d *AltitudeDetector) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()

		d.logger.Info("Altitude detector started", "interval", d.interval)
		for {
			select {
			case <-ctx.Done():
				d.logger.Info("Altitude detector stopped")
				return
			case <-d.stop:
				d.logger.Info("Altitude detector stopped")
				return
			case <-ticker.C:
				d.runCycle(ctx)
			}
		}
	}()
}

// Stop halts the periodic loop. Idempotent.
func (d *AltitudeDetector) Stop() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
}

func (d *AltitudeDetector) runCycle(ctx context.Context) {
	if !atomic.CompareAndSwapInt32(&d.busy, 0, 1) {
		d.metrics.SkippedCycles.WithLabelValues("altitude").Inc()
		d.logger.Warn("Altitude cycle skipped, previous cycle still running")
		return
	}
	defer atomic.StoreInt32(&d.busy, 0)

	start := time.Now()
	result, err := d.EvaluateAltitudeRisk(ctx)
	d.metrics.CycleDuration.WithLabelValues("altitude").Observe(time.Since(start).Seconds())
	d.metrics.DetectionCycles.WithLabelValues("altitude").Inc()

	if err != nil {
		d.metrics.ErrorsCount.WithLabelValues("altitude_cycle").Inc()
		d.logger.Error("Altitude cycle failed", "error", err)
		return
	}
	if len(result.Alerts) > 0 {
		d.logger.Info("Altitude cycle produced alerts", "count", len(result.Alerts))
	}
}

// EvaluateAltitudeRisk classifies every airborne aircraft. A zone-resolution
// failure degrades that aircraft to an unknown-zone classification instead
// of aborting the cycle; a position read or alert store failure aborts it.
func (d *AltitudeDetector) EvaluateAltitudeRisk(ctx context.Context) (*AltitudeRiskResult, error) {
	states, err := d.positions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot positions: %w", err)
	}

	result := &AltitudeRiskResult{
		Alerts:            []entity.AltitudeAlert{},
		MonitoredAircraft: []entity.AircraftInfo{},
	}

	now := time.Now()
	for _, s := range states {
		if s.OnGround {
			continue
		}

		res, err := d.zones.ResolveZone(s.Latitude, s.Longitude)
		if err != nil {
			// per-aircraft isolation: degrade to unknown zone, keep going
			d.metrics.ErrorsCount.WithLabelValues("zone_resolution").Inc()
			d.logger.Warn("Zone resolution failed", "callsign", s.Callsign, "error", err)
			res = &entity.ZoneResolution{InZone: false}
		}

		result.MonitoredAircraft = append(result.MonitoredAircraft, entity.AircraftInfo{
			Callsign:            s.Callsign,
			Altitude:            s.Altitude,
			Latitude:            s.Latitude,
			Longitude:           s.Longitude,
			Velocity:            s.Velocity,
			Heading:             s.Heading,
			InAirportZone:       res.InZone,
			ZoneName:            res.ZoneName,
			AirportName:         res.AirportName,
			DistanceToAirportKm: res.DistanceKm,
		})

		if s.Altitude >= d.minSafeAltitudeFt {
			continue
		}

		alert := d.buildAlert(&s, res, now)
		if err := d.alerts.StoreAltitude(ctx, &alert); err != nil {
			return nil, fmt.Errorf("failed to store altitude alert: %w", err)
		}
		d.metrics.AlertsGenerated.WithLabelValues(entity.CategoryAltitude, alert.Severity).Inc()
		result.Alerts = append(result.Alerts, alert)
	}

	return result, nil
}

func (d *AltitudeDetector) buildAlert(s *entity.AircraftState, res *entity.ZoneResolution, now time.Time) entity.AltitudeAlert {
	alert := entity.AltitudeAlert{
		ID:                  fmt.Sprintf("%s-%d", s.Callsign, now.UnixMilli()),
		Callsign:            s.Callsign,
		Altitude:            s.Altitude,
		Latitude:            s.Latitude,
		Longitude:           s.Longitude,
		Velocity:            s.Velocity,
		Heading:             s.Heading,
		InAirportZone:       res.InZone,
		ZoneName:            res.ZoneName,
		AirportName:         res.AirportName,
		DistanceToAirportKm: res.DistanceKm,
		Timestamp:           now,
	}

	if res.InZone {
		alert.Severity = entity.SeveritySafe
		alert.Message = fmt.Sprintf("low altitude inside %s", res.ZoneName)
		return alert
	}

	alert.Severity = altitudeSeverity(s.Altitude)
	alert.Message = MessageOutsideZone
	return alert
}

// altitudeSeverity applies the outside-zone thresholds, most severe first
func altitudeSeverity(altitudeFt float64) string {
	switch {
	case altitudeFt < 500:
		return entity.SeverityCritical
	case altitudeFt < 750:
		return entity.SeverityHigh
	default:
		return entity.SeverityMedium
	}
}
