package repository

import (
	"context"
	"errors"

	"skywatch-service/internal/domain/entity"
	"skywatch-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepository implements ScheduleRepository
type MongoScheduleRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduleRepository creates a new schedule repository
func NewMongoScheduleRepository(db *mongo.Database) repository.ScheduleRepository {
	collection := db.Collection("flight_schedules")

	// Create unique index on flightNumber
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"flightNumber": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	// Create index on registration for fallback lookups
	regIndex := mongo.IndexModel{
		Keys: bson.M{"registration": 1},
	}
	collection.Indexes().CreateOne(ctx, regIndex)

	return &MongoScheduleRepository{
		collection: collection,
	}
}

// FindByFlightNumber finds a schedule by flight number, (nil, nil) when none
func (r *MongoScheduleRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.FlightSchedule, error) {
	var schedule entity.FlightSchedule
	err := r.collection.FindOne(ctx, bson.M{"flightNumber": flightNumber}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

// FindByRegistration finds a schedule by aircraft registration, (nil, nil) when none
func (r *MongoScheduleRepository) FindByRegistration(ctx context.Context, registration string) (*entity.FlightSchedule, error) {
	var schedule entity.FlightSchedule
	err := r.collection.FindOne(ctx, bson.M{"registration": registration}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}
