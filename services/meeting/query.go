// Package meeting finds the times of day at which a meeting can be held.
//
// Query is a pure function: it sweeps the relevant events once, splits the
// day into atomic ranges tagged with attendee availability, and merges them
// back into maximal ranges. Optional attendees are honoured when some range
// long enough fits as many of them as possible; otherwise only the mandatory
// attendees constrain the answer.
package meeting

import "meetslot/models"

// Query returns the ranges of the day, sorted by start, during which a meeting
// satisfying request can take place. An empty, non-nil slice means no slot.
func Query(events []models.Event, request models.MeetingRequest) []models.TimeRange {
	if request.Duration() > models.MinutesPerDay {
		return []models.TimeRange{}
	}

	mandatory := attendeeSet(request.Mandatory())
	optional := make(attendeeSet, 0)
	for _, a := range request.Optional() {
		if !request.IsMandatory(a) {
			optional = append(optional, a)
		}
	}

	relevant := filterEvents(events, request)
	atoms := partition(relevant.all(), mandatory, optional)
	return selectRanges(atoms, request.Duration(), len(mandatory) > 0, len(optional) > 0)
}
