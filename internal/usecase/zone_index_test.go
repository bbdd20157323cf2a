package usecase

import (
	"testing"

	"skywatch-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZones() []entity.Zone {
	return []entity.Zone{
		{
			Name:        "Frankfurt Approach",
			AirportName: "Frankfurt Airport",
			AirportCode: "FRA",
			CenterLat:   50.0379,
			CenterLon:   8.5622,
			RadiusM:     10000,
		},
		{
			Name:        "Munich Approach",
			AirportName: "Munich Airport",
			AirportCode: "MUC",
			CenterLat:   48.3538,
			CenterLon:   11.7861,
			RadiusM:     10000,
		},
	}
}

func TestNewZoneIndex_RejectsEmptySet(t *testing.T) {
	_, err := NewZoneIndex(nil)
	assert.Error(t, err)
}

func TestNewZoneIndex_RejectsNonPositiveRadius(t *testing.T) {
	zones := testZones()
	zones[0].RadiusM = 0
	_, err := NewZoneIndex(zones)
	assert.Error(t, err)
}

func TestResolveZone_InsideZone(t *testing.T) {
	idx, err := NewZoneIndex(testZones())
	require.NoError(t, err)

	// at the Frankfurt zone center
	res, err := idx.ResolveZone(50.0379, 8.5622)
	require.NoError(t, err)

	assert.True(t, res.InZone)
	assert.Equal(t, "Frankfurt Approach", res.ZoneName)
	assert.Equal(t, "FRA", res.AirportCode)
	assert.InDelta(t, 0, res.DistanceKm, 0.001)
}

func TestResolveZone_OutsideAllZones(t *testing.T) {
	idx, err := NewZoneIndex(testZones())
	require.NoError(t, err)

	// ~24 km northeast of Frankfurt, far from Munich
	res, err := idx.ResolveZone(50.2500, 8.7500)
	require.NoError(t, err)

	assert.False(t, res.InZone)
	assert.Empty(t, res.ZoneName)
	assert.Equal(t, "FRA", res.AirportCode)
	assert.Greater(t, res.DistanceKm, 10.0)
}

func TestResolveZone_NearestContainingZoneWins(t *testing.T) {
	zones := append(testZones(), entity.Zone{
		Name:        "Frankfurt Wide Area",
		AirportName: "Frankfurt Airport",
		AirportCode: "FRA",
		CenterLat:   50.10,
		CenterLon:   8.60,
		RadiusM:     50000,
	})
	idx, err := NewZoneIndex(zones)
	require.NoError(t, err)

	// inside both Frankfurt zones, closer to the wide-area center
	res, err := idx.ResolveZone(50.09, 8.60)
	require.NoError(t, err)

	assert.True(t, res.InZone)
	assert.Equal(t, "Frankfurt Wide Area", res.ZoneName)
}
