package zones

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultZones(t *testing.T) {
	zones := DefaultZones()
	require.NotEmpty(t, zones)

	codes := make(map[string]bool)
	for _, z := range zones {
		assert.Greater(t, z.RadiusM, 0.0)
		codes[z.AirportCode] = true
	}
	assert.True(t, codes["FRA"])
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	zones, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultZones(), zones)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zones.json")
	data := `[{"name":"Test Zone","airportName":"Test Airport","airportCode":"TST","centerLat":10,"centerLon":20,"radiusM":5000}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	zones, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "TST", zones[0].AirportCode)
	assert.Equal(t, 5000.0, zones[0].RadiusM)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
