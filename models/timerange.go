package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

const (
	// StartOfDay is the first minute of the day.
	StartOfDay = 0
	// EndOfDay is the last valid minute of the day (23:59).
	EndOfDay = 24*60 - 1
	// MinutesPerDay is the exclusive upper bound of any TimeRange.
	MinutesPerDay = EndOfDay + 1
)

// WholeDay covers [StartOfDay, EndOfDay+1).
var WholeDay = TimeRange{start: StartOfDay, end: MinutesPerDay}

// TimeRange is a half-open interval [start, end) in minutes from midnight.
// The zero value is the empty range at midnight.
type TimeRange struct {
	start int
	end   int
}

// InvalidRangeError is returned when a TimeRange would have end < start or
// would fall outside the day.
type InvalidRangeError struct {
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range [%d, %d): must satisfy %d <= start <= end <= %d",
		e.Start, e.End, StartOfDay, MinutesPerDay)
}

// TimeInMinutes converts an hour/minute pair into minutes from midnight.
func TimeInMinutes(hours, minutes int) int {
	return hours*60 + minutes
}

// FromStartEnd builds [start, end), or [start, end+1) when inclusive is set.
func FromStartEnd(start, end int, inclusive bool) (TimeRange, error) {
	if inclusive {
		end++
	}
	if start < StartOfDay || end < start || end > MinutesPerDay {
		return TimeRange{}, &InvalidRangeError{Start: start, End: end}
	}
	return TimeRange{start: start, end: end}, nil
}

// FromStartDuration builds [start, start+duration).
func FromStartDuration(start, duration int) (TimeRange, error) {
	return FromStartEnd(start, start+duration, false)
}

// MustRange is FromStartEnd(start, end, false) that panics on invalid input.
// Intended for constants and tests.
func MustRange(start, end int) TimeRange {
	r, err := FromStartEnd(start, end, false)
	if err != nil {
		panic(err)
	}
	return r
}

func (r TimeRange) Start() int    { return r.start }
func (r TimeRange) End() int      { return r.end }
func (r TimeRange) Duration() int { return r.end - r.start }

// Overlaps reports whether the two ranges share at least one minute.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.end && other.start < r.end
}

// Contains reports whether point lies in [start, end).
func (r TimeRange) Contains(point int) bool {
	return point >= r.start && point < r.end
}

// ContainsRange reports whether other lies entirely within r.
// An empty range is contained when its start lies within [start, end].
func (r TimeRange) ContainsRange(other TimeRange) bool {
	if other.start < r.start {
		return false
	}
	if other.Duration() == 0 {
		return other.start <= r.end
	}
	return other.end <= r.end
}

func (r TimeRange) Equal(other TimeRange) bool {
	return r.start == other.start && r.end == other.end
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s, %s)", FormatMinutes(r.start), FormatMinutes(r.end))
}

// FormatMinutes renders minutes from midnight as HH:MM.
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

type timeRangeJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeRangeJSON{Start: r.start, End: r.end})
}

func (r *TimeRange) UnmarshalJSON(data []byte) error {
	var raw timeRangeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := FromStartEnd(raw.Start, raw.End, false)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// SortByStart orders ranges by start minute, keeping the input order of ties.
func SortByStart(ranges []TimeRange) {
	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].start < ranges[j].start
	})
}
