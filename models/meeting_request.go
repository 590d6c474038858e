package models

import "sort"

// MeetingRequest asks for a slot of Duration minutes. Mandatory attendees must
// be free for the whole slot; optional attendees are included when possible.
type MeetingRequest struct {
	mandatory map[string]struct{}
	optional  map[string]struct{}
	duration  int
}

func NewMeetingRequest(mandatory, optional []string, duration int) MeetingRequest {
	return MeetingRequest{
		mandatory: toSet(mandatory),
		optional:  toSet(optional),
		duration:  duration,
	}
}

func (m MeetingRequest) Duration() int { return m.duration }

// Mandatory returns the mandatory attendees, sorted.
func (m MeetingRequest) Mandatory() []string { return sortedKeys(m.mandatory) }

// Optional returns the optional attendees, sorted.
func (m MeetingRequest) Optional() []string { return sortedKeys(m.optional) }

func (m MeetingRequest) IsMandatory(name string) bool {
	_, ok := m.mandatory[name]
	return ok
}

func (m MeetingRequest) IsOptional(name string) bool {
	_, ok := m.optional[name]
	return ok
}

// MeetingRequestInput is the wire form of a MeetingRequest.
type MeetingRequestInput struct {
	Attendees         []string `json:"attendees"`
	OptionalAttendees []string `json:"optionalAttendees,omitempty"`
	Duration          int      `json:"duration" binding:"min=0"`
}

// ToRequest converts the input. Negative durations are rejected by callers
// through binding rules; here they are clamped to zero.
func (in MeetingRequestInput) ToRequest() MeetingRequest {
	d := in.Duration
	if d < 0 {
		d = 0
	}
	return NewMeetingRequest(in.Attendees, in.OptionalAttendees, d)
}

// Input returns the wire form, with sorted attendee lists.
func (m MeetingRequest) Input() MeetingRequestInput {
	return MeetingRequestInput{
		Attendees:         m.Mandatory(),
		OptionalAttendees: m.Optional(),
		Duration:          m.duration,
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
