package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetslot/models"

	"go.uber.org/zap"
)

// ErrInvalidDate is returned for dates not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

// ValidateDate reports ErrInvalidDate unless date is in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

func (s *DefaultMeetingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Query resolves against caller-supplied events without touching storage.
func (s *DefaultMeetingService) Query(events []models.Event, request models.MeetingRequest) []models.TimeRange {
	return Query(events, request)
}

// QueryForDate resolves against the stored events of date, cache first.
func (s *DefaultMeetingService) QueryForDate(ctx context.Context, date string, request models.MeetingRequest) (*QueryResult, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	logger := s.logger().With(zap.String("date", date), zap.Int("duration", request.Duration()))

	// The generation is read before the events so that an invalidation
	// racing this query leaves its result unreachable.
	cache := s.Cache
	var gen int64
	if cache != nil {
		g, err := cache.Generation(ctx, date)
		if err != nil {
			logger.Warn("result cache generation read failed", zap.Error(err))
			cache = nil
		} else {
			gen = g
		}
	}
	if cache != nil {
		ranges, ok, err := cache.Get(ctx, date, gen, request)
		if err != nil {
			logger.Warn("result cache read failed", zap.Error(err))
		} else if ok {
			return &QueryResult{Date: date, Ranges: ranges, Cached: true}, nil
		}
	}

	attendees := append(request.Mandatory(), request.Optional()...)
	records, err := s.Repo.GetByDateAndAttendees(ctx, date, attendees)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for %s: %w", date, err)
	}
	events, err := models.RecordsToEvents(records)
	if err != nil {
		return nil, fmt.Errorf("stored event for %s is invalid: %w", date, err)
	}

	ranges := Query(events, request)
	logger.Debug("resolved meeting slots",
		zap.Int("events", len(events)),
		zap.Int("ranges", len(ranges)))

	if cache != nil {
		if err := cache.Set(ctx, date, gen, request, ranges); err != nil {
			logger.Warn("result cache write failed", zap.Error(err))
		}
	}
	return &QueryResult{Date: date, Ranges: ranges}, nil
}

// AddEvents validates and stores events under date, then drops cached results.
func (s *DefaultMeetingService) AddEvents(ctx context.Context, date string, events []models.EventRecord) ([]string, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	for i := range events {
		if _, err := events[i].ToEvent(); err != nil {
			return nil, fmt.Errorf("event %d (%q): %w", i+1, events[i].Title, err)
		}
		events[i].Date = date
		if events[i].Source == "" {
			events[i].Source = "api"
		}
	}

	ids, err := s.Repo.CreateMany(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("failed to store events: %w", err)
	}
	s.invalidate(ctx, date)
	return ids, nil
}

func (s *DefaultMeetingService) ListEvents(ctx context.Context, date string) ([]models.EventRecord, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	return s.Repo.GetByDate(ctx, date)
}

func (s *DefaultMeetingService) DeleteEvent(ctx context.Context, date, eventID string) error {
	if err := ValidateDate(date); err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, date, eventID); err != nil {
		return err
	}
	s.invalidate(ctx, date)
	return nil
}

func (s *DefaultMeetingService) invalidate(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateDate(ctx, date); err != nil {
		s.logger().Warn("result cache invalidation failed", zap.String("date", date), zap.Error(err))
	}
}
