// FILE: database/repository/event/indexes.go
package eventRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the events collection.
func (r *mongoEventRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on event ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: all events of a day in start order
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("date_start_idx"),
		},
		// Multikey index for attendee lookups within a day
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "attendees", Value: 1}},
			Options: options.Index().SetName("date_attendees_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}
