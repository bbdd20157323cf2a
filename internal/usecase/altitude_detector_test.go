package usecase

import (
	"context"
	"fmt"
	"testing"

	"skywatch-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingResolver struct{}

func (failingResolver) ResolveZone(lat, lon float64) (*entity.ZoneResolution, error) {
	return nil, fmt.Errorf("spatial lookup unavailable")
}

func testZoneIndex(t *testing.T) *ZoneIndex {
	idx, err := NewZoneIndex(testZones())
	require.NoError(t, err)
	return idx
}

func TestEvaluateAltitudeRisk_OutsideZoneThresholds(t *testing.T) {
	tests := []struct {
		altitude float64
		want     string
	}{
		{450, entity.SeverityCritical},
		{650, entity.SeverityHigh},
		{850, entity.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			_, positions, alerts := setupStores(t)
			d := newTestAltitudeDetector(positions, alerts, testZoneIndex(t))

			// outside every zone, nearest airport is Frankfurt
			upsertAircraft(t, positions, "DLH100", 50.2500, 8.7500, tt.altitude, false)

			result, err := d.EvaluateAltitudeRisk(context.Background())
			require.NoError(t, err)
			require.Len(t, result.Alerts, 1)

			alert := result.Alerts[0]
			assert.Equal(t, tt.want, alert.Severity)
			assert.False(t, alert.InAirportZone)
			assert.Equal(t, MessageOutsideZone, alert.Message)
			assert.Equal(t, "Frankfurt Airport", alert.AirportName)
			assert.Greater(t, alert.DistanceToAirportKm, 10.0)
		})
	}
}

func TestEvaluateAltitudeRisk_InsideZoneIsSafe(t *testing.T) {
	_, positions, alerts := setupStores(t)
	d := newTestAltitudeDetector(positions, alerts, testZoneIndex(t))

	// 800 ft over the Frankfurt zone center
	upsertAircraft(t, positions, "DLH100", 50.0379, 8.5622, 800, false)

	result, err := d.EvaluateAltitudeRisk(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)

	alert := result.Alerts[0]
	assert.Equal(t, entity.SeveritySafe, alert.Severity)
	assert.True(t, alert.InAirportZone)
	assert.Equal(t, "Frankfurt Approach", alert.ZoneName)

	// SAFE entries surface in live queries but never enter history
	active, err := alerts.ActiveAltitude(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 1)

	history, err := alerts.AltitudeHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEvaluateAltitudeRisk_SafeAltitudeStillMonitored(t *testing.T) {
	_, positions, alerts := setupStores(t)
	d := newTestAltitudeDetector(positions, alerts, testZoneIndex(t))

	upsertAircraft(t, positions, "DLH100", 50.2500, 8.7500, 35000, false)
	upsertAircraft(t, positions, "BAW200", 50.0379, 8.5622, 4000, false)

	result, err := d.EvaluateAltitudeRisk(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Alerts)
	assert.Len(t, result.MonitoredAircraft, 2)
}

func TestEvaluateAltitudeRisk_GroundedAircraftExcluded(t *testing.T) {
	_, positions, alerts := setupStores(t)
	d := newTestAltitudeDetector(positions, alerts, testZoneIndex(t))

	upsertAircraft(t, positions, "DLH100", 50.2500, 8.7500, 0, true)

	result, err := d.EvaluateAltitudeRisk(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Alerts)
	assert.Empty(t, result.MonitoredAircraft)
}

func TestEvaluateAltitudeRisk_ResolverFailureDegrades(t *testing.T) {
	_, positions, alerts := setupStores(t)
	d := newTestAltitudeDetector(positions, alerts, failingResolver{})

	upsertAircraft(t, positions, "DLH100", 50.2500, 8.7500, 450, false)

	result, err := d.EvaluateAltitudeRisk(context.Background())
	require.NoError(t, err)

	// the aircraft degrades to unknown zone instead of aborting the cycle
	require.Len(t, result.MonitoredAircraft, 1)
	assert.False(t, result.MonitoredAircraft[0].InAirportZone)
	assert.Empty(t, result.MonitoredAircraft[0].AirportName)

	require.Len(t, result.Alerts, 1)
	assert.Equal(t, entity.SeverityCritical, result.Alerts[0].Severity)
}

func TestEvaluateAltitudeRisk_EndToEndCritical(t *testing.T) {
	_, positions, alerts := setupStores(t)
	d := newTestAltitudeDetector(positions, alerts, testZoneIndex(t))

	// 450 ft outside Frankfurt's 10 km approach zone
	upsertAircraft(t, positions, "DLH100", 50.2500, 8.7500, 450, false)

	result, err := d.EvaluateAltitudeRisk(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Alerts, 1)

	alert := result.Alerts[0]
	assert.Equal(t, entity.SeverityCritical, alert.Severity)
	assert.False(t, alert.InAirportZone)
	assert.Equal(t, "DLH100", alert.Callsign)

	history, err := alerts.AltitudeHistory(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, alert.ID, history[0].ID)
}

func TestAltitudeSeverityTiers(t *testing.T) {
	assert.Equal(t, entity.SeverityCritical, altitudeSeverity(499))
	assert.Equal(t, entity.SeverityHigh, altitudeSeverity(500))
	assert.Equal(t, entity.SeverityHigh, altitudeSeverity(749))
	assert.Equal(t, entity.SeverityMedium, altitudeSeverity(750))
	assert.Equal(t, entity.SeverityMedium, altitudeSeverity(999))
}
