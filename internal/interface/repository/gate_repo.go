package repository

import (
	"context"
	"errors"
	"time"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormGateRepository implements the GateRepository interface
type GormGateRepository struct {
	db *gorm.DB
}

// NewGormGateRepository creates a new GORM gate repository
func NewGormGateRepository(db *gorm.DB) repository.GateRepository {
	return &GormGateRepository{
		db: db,
	}
}

// Gates GORM model for database mapping
type Gates struct {
	ID         uint   `gorm:"primaryKey"`
	FlightID   string `gorm:"column:flight_id;index"`
	Gate       string `gorm:"column:gate"`
	Terminal   string `gorm:"column:terminal;index"`
	Occupied   bool   `gorm:"column:occupied"`
	AssignedAt time.Time
	UpdatedAt  time.Time
}

// TableName overrides the default table name
func (Gates) TableName() string {
	return "m_gates"
}

func toEntity(g *Gates) *entity.GateAssignment {
	return &entity.GateAssignment{
		ID:         g.ID,
		FlightID:   g.FlightID,
		Gate:       g.Gate,
		Terminal:   g.Terminal,
		Occupied:   g.Occupied,
		AssignedAt: g.AssignedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// GetByFlight finds the gate assignment for a flight, (nil, nil) when none
func (r *GormGateRepository) GetByFlight(ctx context.Context, flightID string) (*entity.GateAssignment, error) {
	var gate Gates
	result := r.db.WithContext(ctx).Where("flight_id = ?", flightID).First(&gate)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return toEntity(&gate), nil
}

// ListByTerminal lists occupied gate assignments for one terminal
func (r *GormGateRepository) ListByTerminal(ctx context.Context, terminal string) ([]entity.GateAssignment, error) {
	var gates []Gates
	result := r.db.WithContext(ctx).Where("terminal = ? AND occupied = ?", terminal, true).Find(&gates)
	if result.Error != nil {
		return nil, result.Error
	}

	assignments := make([]entity.GateAssignment, 0, len(gates))
	for i := range gates {
		assignments = append(assignments, *toEntity(&gates[i]))
	}
	return assignments, nil
}

// CountOccupied counts gates currently holding a flight
func (r *GormGateRepository) CountOccupied(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Gates{}).Where("occupied = ?", true).Count(&count)
	return count, result.Error
}

// CountTotal counts all known gates
func (r *GormGateRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Gates{}).Count(&count)
	return count, result.Error
}
