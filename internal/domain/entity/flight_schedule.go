// internal/domain/entity/flight_schedule.go
package entity

import (
	"time"
)

// FlightSchedule is a scheduled flight document supplied by an external
// provider, keyed by flight number with an aircraft-registration fallback.
type FlightSchedule struct {
	ID                 string    `bson:"_id,omitempty" json:"id,omitempty"`
	FlightNumber       string    `bson:"flightNumber" json:"flightNumber"`
	Registration       string    `bson:"registration,omitempty" json:"registration,omitempty"`
	Airline            string    `bson:"airline,omitempty" json:"airline,omitempty"`
	Origin             string    `bson:"origin,omitempty" json:"origin,omitempty"`
	Destination        string    `bson:"destination,omitempty" json:"destination,omitempty"`
	ScheduledDeparture time.Time `bson:"scheduledDeparture,omitempty" json:"scheduledDeparture,omitempty"`
	ScheduledArrival   time.Time `bson:"scheduledArrival,omitempty" json:"scheduledArrival,omitempty"`
	Status             string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt          time.Time `bson:"createdAt,omitempty" json:"-"`
	UpdatedAt          time.Time `bson:"updatedAt,omitempty" json:"-"`
}
