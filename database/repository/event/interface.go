// File: database/repository/event/interface.go
package eventRepo

import (
	"context"
	"errors"

	"meetslot/database"
	"meetslot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrEventNotFound is returned when no stored event matches.
var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	CreateMany(ctx context.Context, events []models.EventRecord) ([]string, error)
	DeleteByID(ctx context.Context, date, eventID string) error
	GetByDate(ctx context.Context, date string) ([]models.EventRecord, error)
	GetByDateAndAttendees(ctx context.Context, date string, attendees []string) ([]models.EventRecord, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	return &mongoEventRepo{
		coll: database.Database().Collection("events"),
	}
}
