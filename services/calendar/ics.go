// Package calendar converts iCalendar documents into stored events.
package calendar

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"meetslot/models"

	"github.com/emersion/go-ical"
)

const dateLayout = "2006-01-02"

// ImportStats counts what an import kept and skipped.
type ImportStats struct {
	Imported    int `json:"imported"`
	Cancelled   int `json:"cancelled"`
	OtherDay    int `json:"otherDay"`
	MissingTime int `json:"missingTime"`
	EndsEarly   int `json:"endsEarly"` // end before start
	NoAttendees int `json:"noAttendees"`
}

// ParseICS returns the VEVENTs of r that fall on date, clipped to that day.
// Times without a zone are read as UTC.
func ParseICS(r io.Reader, date string) ([]models.EventRecord, ImportStats, error) {
	var stats ImportStats
	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return nil, stats, fmt.Errorf("invalid date %q: %w", date, err)
	}
	dayEnd := day.Add(24 * time.Hour)

	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		return nil, stats, fmt.Errorf("failed to decode calendar: %w", err)
	}

	records := []models.EventRecord{}
	for _, ev := range cal.Events() {
		if status := ev.Props.Get(ical.PropStatus); status != nil && strings.EqualFold(status.Value, "CANCELLED") {
			stats.Cancelled++
			continue
		}

		start, errStart := ev.DateTimeStart(time.UTC)
		end, errEnd := ev.DateTimeEnd(time.UTC)
		if errStart != nil || errEnd != nil || start.IsZero() || end.IsZero() {
			stats.MissingTime++
			continue
		}
		if end.Before(start) {
			stats.EndsEarly++
			continue
		}
		if !end.After(day) || !start.Before(dayEnd) {
			stats.OtherDay++
			continue
		}

		attendees := eventAttendees(ev.Component)
		if len(attendees) == 0 {
			stats.NoAttendees++
			continue
		}

		rec := models.EventRecord{
			Date:      date,
			Start:     minuteOfDay(start, day, math.Floor),
			End:       minuteOfDay(end, day, math.Ceil),
			Attendees: attendees,
			Source:    "ics",
		}
		if summary := ev.Props.Get(ical.PropSummary); summary != nil {
			rec.Title = summary.Value
		}
		records = append(records, rec)
		stats.Imported++
	}
	return records, stats, nil
}

// minuteOfDay clamps t into the day and rounds it to a whole minute.
func minuteOfDay(t, day time.Time, round func(float64) float64) int {
	m := int(round(t.Sub(day).Minutes()))
	return max(models.StartOfDay, min(m, models.MinutesPerDay))
}

// eventAttendees collects ATTENDEE and ORGANIZER addresses, leaving out
// attendees who declined.
func eventAttendees(comp *ical.Component) []string {
	seen := map[string]bool{}
	var out []string
	add := func(p ical.Prop) {
		if strings.EqualFold(p.Params.Get(ical.ParamParticipationStatus), "DECLINED") {
			return
		}
		addr := normalizeAddress(p.Value)
		if addr == "" || seen[addr] {
			return
		}
		seen[addr] = true
		out = append(out, addr)
	}
	for _, p := range comp.Props.Values(ical.PropAttendee) {
		add(p)
	}
	for _, p := range comp.Props.Values(ical.PropOrganizer) {
		add(p)
	}
	return out
}

func normalizeAddress(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= len("mailto:") && strings.EqualFold(v[:len("mailto:")], "mailto:") {
		v = v[len("mailto:"):]
	}
	return strings.ToLower(v)
}
