// File: database/repository/event/queries.go
package eventRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meetslot/models"
)

func (r *mongoEventRepo) GetByDate(ctx context.Context, date string) ([]models.EventRecord, error) {
	return r.find(ctx, bson.M{"date": date})
}

// GetByDateAndAttendees returns the events of date that involve at least one
// of attendees.
func (r *mongoEventRepo) GetByDateAndAttendees(ctx context.Context, date string, attendees []string) ([]models.EventRecord, error) {
	if len(attendees) == 0 {
		return []models.EventRecord{}, nil
	}
	return r.find(ctx, bson.M{"date": date, "attendees": bson.M{"$in": attendees}})
}

func (r *mongoEventRepo) find(ctx context.Context, filter bson.M) ([]models.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}, {Key: "end", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.EventRecord{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
