package meeting

import "strings"

// attendeeSet is a sorted, duplicate-free list of attendee names.
type attendeeSet []string

func (s attendeeSet) key() string { return strings.Join(s, "\x00") }

// intersect returns the names present in both sets.
func (s attendeeSet) intersect(other attendeeSet) attendeeSet {
	out := make(attendeeSet, 0, min(len(s), len(other)))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			out = append(out, s[i])
			i++
			j++
		case s[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// containsAll reports whether every name of sub is in s.
func (s attendeeSet) containsAll(sub attendeeSet) bool {
	i := 0
	for _, name := range sub {
		for i < len(s) && s[i] < name {
			i++
		}
		if i == len(s) || s[i] != name {
			return false
		}
		i++
	}
	return true
}
