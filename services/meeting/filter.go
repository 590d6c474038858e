package meeting

import "meetslot/models"

// relevantEvents groups the events a query cares about. Events that involve
// no requested attendee are dropped, as are zero-width events.
type relevantEvents struct {
	mandatory    []models.Event // at least one mandatory attendee
	optionalOnly []models.Event // optional attendees only
}

func (r relevantEvents) all() []models.Event {
	out := make([]models.Event, 0, len(r.mandatory)+len(r.optionalOnly))
	out = append(out, r.mandatory...)
	return append(out, r.optionalOnly...)
}

func filterEvents(events []models.Event, request models.MeetingRequest) relevantEvents {
	var out relevantEvents
	for _, ev := range events {
		if ev.When().Duration() == 0 {
			continue
		}
		var hasMandatory, hasOptional bool
		for _, a := range ev.Attendees() {
			if request.IsMandatory(a) {
				hasMandatory = true
				break
			}
			if request.IsOptional(a) {
				hasOptional = true
			}
		}
		switch {
		case hasMandatory:
			out.mandatory = append(out.mandatory, ev)
		case hasOptional:
			out.optionalOnly = append(out.optionalOnly, ev)
		}
	}
	return out
}
