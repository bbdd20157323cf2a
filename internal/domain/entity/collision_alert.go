// internal/domain/entity/collision_alert.go
package entity

import (
	"time"
)

// Alert severity tiers, most severe first. SAFE marks an informational
// in-zone low-altitude entry that is not a risk.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeveritySafe     = "SAFE"
)

// Alert Ledger categories
const (
	CategoryCollision = "collision"
	CategoryAltitude  = "altitude"
)

// AircraftSnapshot captures one aircraft's position at detection time
type AircraftSnapshot struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// CollisionAlert records one unsafe proximity between a pair of aircraft.
// Immutable once created.
type CollisionAlert struct {
	ID             string           `json:"id"`
	Callsign1      string           `json:"callsign1"`
	Callsign2      string           `json:"callsign2"`
	DistanceKm     float64          `json:"distanceKm"`
	AltitudeDiffFt float64          `json:"altitudeDiffFt"`
	Severity       string           `json:"severity"`
	Aircraft1      AircraftSnapshot `json:"aircraft1"`
	Aircraft2      AircraftSnapshot `json:"aircraft2"`
	Timestamp      time.Time        `json:"timestamp"`
}
