package usecase

import (
	"context"
	"testing"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"
	storeRepo "skywatch-service/internal/interface/repository"
	"skywatch-service/pkg/logger"
	"skywatch-service/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// promauto registers on the default registry, so the test binary shares one
// metrics instance
var testMetrics = metrics.NewMetrics("skywatch_usecase_test")

func setupStores(t *testing.T) (*miniredis.Miniredis, repository.PositionRepository, repository.AlertRepository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	positions := storeRepo.NewRedisPositionRepository(client, time.Minute)
	alerts := storeRepo.NewRedisAlertRepository(client, 5*time.Minute, 100)
	return mr, positions, alerts
}

func upsertAircraft(t *testing.T, positions repository.PositionRepository, callsign string, lat, lon, alt float64, onGround bool) {
	t.Helper()
	err := positions.Upsert(context.Background(), &entity.AircraftState{
		Callsign:  callsign,
		Latitude:  lat,
		Longitude: lon,
		Altitude:  alt,
		Velocity:  420,
		Heading:   90,
		OnGround:  onGround,
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func newTestCollisionDetector(positions repository.PositionRepository, alerts repository.AlertRepository) *CollisionDetector {
	return NewCollisionDetector(positions, alerts, 5, 1000, 5*time.Second, logger.NewNop(), testMetrics)
}

func newTestAltitudeDetector(positions repository.PositionRepository, alerts repository.AlertRepository, zones ZoneResolver) *AltitudeDetector {
	return NewAltitudeDetector(positions, alerts, zones, 1000, 5*time.Second, logger.NewNop(), testMetrics)
}
