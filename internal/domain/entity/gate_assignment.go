// internal/domain/entity/gate_assignment.go
package entity

import (
	"time"
)

// GateAssignment maps a flight identifier to its gate and terminal
type GateAssignment struct {
	ID         uint
	FlightID   string
	Gate       string
	Terminal   string
	Occupied   bool
	AssignedAt time.Time
	UpdatedAt  time.Time
}
