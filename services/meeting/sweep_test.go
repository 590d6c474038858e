package meeting

import (
	"reflect"
	"testing"

	"meetslot/models"
)

func TestFilterEvents(t *testing.T) {
	events := []models.Event{
		event("mandatory", 60, 120, "A", "X"),
		event("both", 60, 120, "A", "B"),
		event("optional", 60, 120, "B"),
		event("nobody", 60, 120, "X"),
		event("zero width", 60, 60, "A"),
	}
	request := models.NewMeetingRequest([]string{"A"}, []string{"B"}, 30)

	got := filterEvents(events, request)

	titles := func(evs []models.Event) []string {
		var out []string
		for _, e := range evs {
			out = append(out, e.Title())
		}
		return out
	}
	if want := []string{"mandatory", "both"}; !reflect.DeepEqual(titles(got.mandatory), want) {
		t.Errorf("mandatory = %v, want %v", titles(got.mandatory), want)
	}
	if want := []string{"optional"}; !reflect.DeepEqual(titles(got.optionalOnly), want) {
		t.Errorf("optionalOnly = %v, want %v", titles(got.optionalOnly), want)
	}
}

func TestBoundaries_EndsBeforeStarts(t *testing.T) {
	events := []models.Event{
		event("second", 120, 180, "A"),
		event("first", 60, 120, "A"),
	}
	points := boundaries(events, map[string]bool{"A": true})

	wantKinds := []pointKind{pointStart, pointEnd, pointStart, pointEnd, pointSentinel}
	wantAt := []int{60, 120, 120, 180, models.MinutesPerDay}
	if len(points) != len(wantKinds) {
		t.Fatalf("got %d points, want %d", len(points), len(wantKinds))
	}
	for i, p := range points {
		if p.kind != wantKinds[i] || p.at != wantAt[i] {
			t.Errorf("point %d = (%d, %v), want (%d, %v)", i, p.at, p.kind, wantAt[i], wantKinds[i])
		}
	}
}

func TestPartition(t *testing.T) {
	events := []models.Event{
		event("E1", 60, 120, "A"),
		event("E2", 90, 150, "B"),
	}
	atoms := partition(events, attendeeSet{"A"}, attendeeSet{"B"})

	want := []atomicRange{
		{when: rng(0, 60), mandatoryFree: true, freeOptional: attendeeSet{"B"}},
		{when: rng(60, 90)},
		{when: rng(90, 120)},
		{when: rng(120, 150), mandatoryFree: true, freeOptional: attendeeSet{}},
		{when: rng(150, 1440), mandatoryFree: true, freeOptional: attendeeSet{"B"}},
	}
	if len(atoms) != len(want) {
		t.Fatalf("got %d atoms, want %d: %+v", len(atoms), len(want), atoms)
	}
	for i := range want {
		if !atoms[i].when.Equal(want[i].when) ||
			atoms[i].mandatoryFree != want[i].mandatoryFree ||
			!reflect.DeepEqual(atoms[i].freeOptional, want[i].freeOptional) {
			t.Errorf("atom %d = %+v, want %+v", i, atoms[i], want[i])
		}
	}
}

func TestPartition_AdjacentEventsDoNotOverlap(t *testing.T) {
	events := []models.Event{
		event("E1", 60, 120, "A"),
		event("E2", 120, 180, "A"),
	}
	atoms := partition(events, attendeeSet{"A"}, nil)

	for _, a := range atoms {
		if a.when.Duration() == 0 {
			t.Errorf("zero width atom %v", a.when)
		}
	}
	if got := mandatoryFit(atoms, 1); len(got) != 2 || !got[0].Equal(rng(0, 60)) || !got[1].Equal(rng(180, 1440)) {
		t.Errorf("mandatoryFit = %v", got)
	}
}

func TestAttendeeSet(t *testing.T) {
	s := attendeeSet{"a", "b", "d"}

	if got := s.intersect(attendeeSet{"b", "c", "d"}); !reflect.DeepEqual(got, attendeeSet{"b", "d"}) {
		t.Errorf("intersect = %v", got)
	}
	if !s.containsAll(attendeeSet{"a", "d"}) {
		t.Error("containsAll({a,d}) = false, want true")
	}
	if s.containsAll(attendeeSet{"c"}) {
		t.Error("containsAll({c}) = true, want false")
	}
	if !s.containsAll(nil) {
		t.Error("containsAll(nil) = false, want true")
	}
}
