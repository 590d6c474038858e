package models

// AvailableInterval represents a continuous time block free for the meeting.
type AvailableInterval struct {
	Start int    `json:"start"` // Minutes from midnight
	End   int    `json:"end"`   // Minutes from midnight, exclusive
	Label string `json:"label"` // e.g., "09:00 - 10:30"
}

// NewAvailableInterval labels a resolved range for presentation.
func NewAvailableInterval(r TimeRange) AvailableInterval {
	return AvailableInterval{
		Start: r.Start(),
		End:   r.End(),
		Label: FormatMinutes(r.Start()) + " - " + FormatMinutes(r.End()),
	}
}

// ToAvailableIntervals labels every range, preserving order.
func ToAvailableIntervals(ranges []TimeRange) []AvailableInterval {
	out := make([]AvailableInterval, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, NewAvailableInterval(r))
	}
	return out
}
