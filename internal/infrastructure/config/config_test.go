package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.SafeDistanceKm)
	assert.Equal(t, 1000.0, cfg.SafeAltitudeDiffFt)
	assert.Equal(t, 5*time.Second, cfg.CollisionInterval)
	assert.Equal(t, 1000.0, cfg.MinSafeAltitudeFt)
	assert.Equal(t, 5*time.Second, cfg.AltitudeInterval)
	assert.Equal(t, 300*time.Second, cfg.AlertTTL)
	assert.Equal(t, 100, cfg.ActiveAlertCap)
	assert.Equal(t, 60*time.Second, cfg.PositionTTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SAFE_DISTANCE_KM", "7.5")
	t.Setenv("COLLISION_CHECK_INTERVAL", "10")
	t.Setenv("ACTIVE_ALERT_CAP", "50")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7.5, cfg.SafeDistanceKm)
	assert.Equal(t, 10*time.Second, cfg.CollisionInterval)
	assert.Equal(t, 50, cfg.ActiveAlertCap)
}
