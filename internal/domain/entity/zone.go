// internal/domain/entity/zone.go
package entity

// Zone is a circular geofence anchored to an airport
type Zone struct {
	Name        string  `json:"name"`
	AirportName string  `json:"airportName"`
	AirportCode string  `json:"airportCode"`
	CenterLat   float64 `json:"centerLat"`
	CenterLon   float64 `json:"centerLon"`
	RadiusM     float64 `json:"radiusM"`
}

// ZoneResolution is the outcome of resolving a point against the zone set.
// When no zone contains the point, the nearest airport (ignoring radius)
// is reported with InZone false.
type ZoneResolution struct {
	InZone      bool    `json:"inZone"`
	ZoneName    string  `json:"zoneName,omitempty"`
	AirportName string  `json:"airportName,omitempty"`
	AirportCode string  `json:"airportCode,omitempty"`
	DistanceKm  float64 `json:"distanceKm"`
}
