package models

import (
	"sort"
	"time"
)

// Event is a calendar entry for one day. It is immutable once built.
type Event struct {
	title     string
	when      TimeRange
	attendees map[string]struct{}
}

// NewEvent copies attendees into a set; duplicates collapse.
func NewEvent(title string, when TimeRange, attendees []string) Event {
	set := make(map[string]struct{}, len(attendees))
	for _, a := range attendees {
		set[a] = struct{}{}
	}
	return Event{title: title, when: when, attendees: set}
}

func (e Event) Title() string   { return e.title }
func (e Event) When() TimeRange { return e.when }

// HasAttendee reports whether name attends the event.
func (e Event) HasAttendee(name string) bool {
	_, ok := e.attendees[name]
	return ok
}

// Attendees returns the attendee set as a sorted slice.
func (e Event) Attendees() []string {
	out := make([]string, 0, len(e.attendees))
	for a := range e.attendees {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// EventRecord is the stored and wire form of an Event.
type EventRecord struct {
	ID        string    `bson:"id" json:"id"`
	Date      string    `bson:"date" json:"date"` // e.g., "2025-02-25"
	Title     string    `bson:"title" json:"title"`
	Start     int       `bson:"start" json:"start"` // minutes from midnight
	End       int       `bson:"end" json:"end"`     // minutes from midnight, exclusive
	Attendees []string  `bson:"attendees" json:"attendees"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"` // "api", "ics", "seed"
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// ToEvent validates the record's range and converts it.
func (r EventRecord) ToEvent() (Event, error) {
	when, err := FromStartEnd(r.Start, r.End, false)
	if err != nil {
		return Event{}, err
	}
	return NewEvent(r.Title, when, r.Attendees), nil
}

// RecordsToEvents converts every record, failing on the first invalid one.
func RecordsToEvents(records []EventRecord) ([]Event, error) {
	events := make([]Event, 0, len(records))
	for _, rec := range records {
		ev, err := rec.ToEvent()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
