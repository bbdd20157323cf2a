// internal/domain/entity/aircraft_state.go
package entity

import (
	"time"
)

// AircraftState is the last known kinematic state of one tracked aircraft.
// There is exactly one current-state slot per callsign; every ingestion
// write overwrites it and refreshes its time-to-live.
type AircraftState struct {
	Callsign  string    `json:"callsign"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Altitude  float64   `json:"altitude"` // feet
	Velocity  float64   `json:"velocity"` // knots
	Heading   float64   `json:"heading"`  // degrees
	OnGround  bool      `json:"onGround"`
	UpdatedAt time.Time `json:"updatedAt"`
}
