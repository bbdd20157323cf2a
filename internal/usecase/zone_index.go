package usecase

import (
	"fmt"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/pkg/geo"
)

// ZoneResolver resolves a point against the airport zone set
type ZoneResolver interface {
	ResolveZone(lat, lon float64) (*entity.ZoneResolution, error)
}

// ZoneIndex holds the static set of circular airport zones and answers
// nearest-zone and nearest-airport lookups. Read-only after construction.
type ZoneIndex struct {
	zones []entity.Zone
}

// NewZoneIndex creates a zone index over a static zone set
func NewZoneIndex(zones []entity.Zone) (*ZoneIndex, error) {
	if len(zones) == 0 {
		return nil, fmt.Errorf("at least one zone is required")
	}
	for _, z := range zones {
		if z.RadiusM <= 0 {
			return nil, fmt.Errorf("zone %q has non-positive radius", z.Name)
		}
	}
	return &ZoneIndex{zones: zones}, nil
}

// Zones returns the configured zone set
func (idx *ZoneIndex) Zones() []entity.Zone {
	return idx.zones
}

// ResolveZone finds the nearest zone containing the point. If no zone
// contains it, the nearest airport center is reported with InZone false.
func (idx *ZoneIndex) ResolveZone(lat, lon float64) (*entity.ZoneResolution, error) {
	var (
		best       *entity.Zone
		bestDistKm float64
		inside     *entity.Zone
		insideDist float64
	)

	for i := range idx.zones {
		z := &idx.zones[i]
		distKm := geo.DistanceKm(lat, lon, z.CenterLat, z.CenterLon)

		if distKm*1000 < z.RadiusM {
			if inside == nil || distKm < insideDist {
				inside = z
				insideDist = distKm
			}
		}
		if best == nil || distKm < bestDistKm {
			best = z
			bestDistKm = distKm
		}
	}

	if inside != nil {
		return &entity.ZoneResolution{
			InZone:      true,
			ZoneName:    inside.Name,
			AirportName: inside.AirportName,
			AirportCode: inside.AirportCode,
			DistanceKm:  insideDist,
		}, nil
	}

	return &entity.ZoneResolution{
		InZone:      false,
		AirportName: best.AirportName,
		AirportCode: best.AirportCode,
		DistanceKm:  bestDistKm,
	}, nil
}
