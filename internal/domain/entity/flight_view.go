// internal/domain/entity/flight_view.go
package entity

// Flight status values derived by the aggregator. The on-ground flag wins,
// then the schedule status, then "in_flight"; schedule-only flights with no
// live position are "scheduled".
const (
	StatusInFlight  = "in_flight"
	StatusOnGround  = "on_ground"
	StatusScheduled = "scheduled"
)

// FlightView is the composite read model for one flight, merged from the
// position store and the gate/schedule registries. Recomputed on every
// query, never stored.
type FlightView struct {
	Callsign string          `json:"callsign"`
	Position *AircraftState  `json:"position,omitempty"`
	Gate     string          `json:"gate,omitempty"`
	Terminal string          `json:"terminal,omitempty"`
	Schedule *FlightSchedule `json:"schedule,omitempty"`
	Status   string          `json:"status"`
}

// FleetSummary holds counts over the live fleet and gate occupancy
type FleetSummary struct {
	TotalTracked   int   `json:"totalTracked"`
	InFlight       int   `json:"inFlight"`
	OnGround       int   `json:"onGround"`
	GatesOccupied  int64 `json:"gatesOccupied"`
	GatesAvailable int64 `json:"gatesAvailable"`
}
