package meeting

import (
	"sort"

	"meetslot/models"
)

type pointKind int

// Order matters: at equal timestamps ends are applied before starts, and the
// day-end sentinel comes last.
const (
	pointEnd pointKind = iota
	pointStart
	pointSentinel
)

// boundary is an event start, an event end, or the day-end sentinel.
type boundary struct {
	at        int
	kind      pointKind
	attendees []string // tracked attendees of the event; nil for the sentinel
}

// atomicRange is a span between two consecutive boundaries.
type atomicRange struct {
	when          models.TimeRange
	mandatoryFree bool
	freeOptional  attendeeSet // only set when mandatoryFree
}

// tracker holds live per-attendee counts of covering events.
type tracker struct {
	counts        map[string]int
	mandatory     map[string]bool
	busyMandatory int
}

func (t *tracker) apply(b boundary) {
	delta := 1
	if b.kind == pointEnd {
		delta = -1
	}
	for _, a := range b.attendees {
		before := t.counts[a]
		t.counts[a] = before + delta
		if !t.mandatory[a] {
			continue
		}
		switch {
		case before == 0 && delta > 0:
			t.busyMandatory++
		case before == 1 && delta < 0:
			t.busyMandatory--
		}
	}
}

func (t *tracker) freeOf(optional attendeeSet) attendeeSet {
	free := make(attendeeSet, 0, len(optional))
	for _, a := range optional {
		if t.counts[a] == 0 {
			free = append(free, a)
		}
	}
	return free
}

// boundaries lists start and end points of each event plus the sentinel,
// in sweep order. Only attendees in tracked are carried on each point.
func boundaries(events []models.Event, tracked map[string]bool) []boundary {
	points := make([]boundary, 0, 2*len(events)+1)
	for _, ev := range events {
		var who []string
		for _, a := range ev.Attendees() {
			if tracked[a] {
				who = append(who, a)
			}
		}
		points = append(points,
			boundary{at: ev.When().Start(), kind: pointStart, attendees: who},
			boundary{at: ev.When().End(), kind: pointEnd, attendees: who},
		)
	}
	points = append(points, boundary{at: models.MinutesPerDay, kind: pointSentinel})

	sort.SliceStable(points, func(i, j int) bool {
		if points[i].at != points[j].at {
			return points[i].at < points[j].at
		}
		return points[i].kind < points[j].kind
	})
	return points
}

// partition sweeps the day once and returns the atomic ranges in order.
// optional must already exclude mandatory attendees.
func partition(events []models.Event, mandatory, optional attendeeSet) []atomicRange {
	t := &tracker{
		counts:    make(map[string]int, len(mandatory)+len(optional)),
		mandatory: make(map[string]bool, len(mandatory)),
	}
	tracked := make(map[string]bool, len(mandatory)+len(optional))
	for _, a := range mandatory {
		t.mandatory[a] = true
		tracked[a] = true
	}
	for _, a := range optional {
		tracked[a] = true
	}

	var atoms []atomicRange
	prev := models.StartOfDay
	for _, p := range boundaries(events, tracked) {
		if p.at > prev {
			atom := atomicRange{
				when:          models.MustRange(prev, p.at),
				mandatoryFree: t.busyMandatory == 0,
			}
			if atom.mandatoryFree {
				atom.freeOptional = t.freeOf(optional)
			}
			atoms = append(atoms, atom)
			prev = p.at
		}
		if p.kind != pointSentinel {
			t.apply(p)
		}
	}
	return atoms
}
