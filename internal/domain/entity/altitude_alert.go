// internal/domain/entity/altitude_alert.go
package entity

import (
	"time"
)

// AltitudeAlert records one low-altitude classification for an aircraft.
// SAFE-severity entries are informational (aircraft is low but inside an
// airport zone) and are kept out of long-lived alert history. Immutable
// once created.
type AltitudeAlert struct {
	ID                  string    `json:"id"`
	Callsign            string    `json:"callsign"`
	Altitude            float64   `json:"altitude"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	Velocity            float64   `json:"velocity"`
	Heading             float64   `json:"heading"`
	Severity            string    `json:"severity"`
	Message             string    `json:"message"`
	InAirportZone       bool      `json:"inAirportZone"`
	ZoneName            string    `json:"zoneName,omitempty"`
	AirportName         string    `json:"airportName,omitempty"`
	DistanceToAirportKm float64   `json:"distanceToAirportKm"`
	Timestamp           time.Time `json:"timestamp"`
}

// AircraftInfo is one entry of the monitored-aircraft snapshot produced by
// every altitude-risk cycle, regardless of whether the aircraft alerted.
type AircraftInfo struct {
	Callsign            string  `json:"callsign"`
	Altitude            float64 `json:"altitude"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Velocity            float64 `json:"velocity"`
	Heading             float64 `json:"heading"`
	InAirportZone       bool    `json:"inAirportZone"`
	ZoneName            string  `json:"zoneName,omitempty"`
	AirportName         string  `json:"airportName,omitempty"`
	DistanceToAirportKm float64 `json:"distanceToAirportKm"`
}
