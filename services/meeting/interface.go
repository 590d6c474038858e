package meeting

import (
	"context"

	eventRepo "meetslot/database/repository/event"
	"meetslot/models"

	"go.uber.org/zap"
)

// MeetingService resolves meeting slots against stored calendars.
type MeetingService interface {
	Query(events []models.Event, request models.MeetingRequest) []models.TimeRange
	QueryForDate(ctx context.Context, date string, request models.MeetingRequest) (*QueryResult, error)
	AddEvents(ctx context.Context, date string, events []models.EventRecord) ([]string, error)
	ListEvents(ctx context.Context, date string) ([]models.EventRecord, error)
	DeleteEvent(ctx context.Context, date, eventID string) error
}

// QueryResult is the answer for one date.
type QueryResult struct {
	Date   string             `json:"date"`
	Ranges []models.TimeRange `json:"ranges"`
	Cached bool               `json:"cached"`
}

// DefaultMeetingService implements MeetingService. Cache may be nil.
type DefaultMeetingService struct {
	Repo   eventRepo.EventRepository
	Cache  ResultCache
	Logger *zap.Logger
}
