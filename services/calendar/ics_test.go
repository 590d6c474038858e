package calendar

import (
	"strings"
	"testing"

	"meetslot/models"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//meetslot//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:standup@example.com\r\n" +
	"DTSTAMP:20250220T120000Z\r\n" +
	"DTSTART:20250225T090000Z\r\n" +
	"DTEND:20250225T091500Z\r\n" +
	"SUMMARY:Standup\r\n" +
	"ORGANIZER:mailto:Alice@example.com\r\n" +
	"ATTENDEE;PARTSTAT=ACCEPTED:mailto:bob@example.com\r\n" +
	"ATTENDEE;PARTSTAT=DECLINED:mailto:carol@example.com\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:late@example.com\r\n" +
	"DTSTAMP:20250220T120000Z\r\n" +
	"DTSTART:20250225T230000Z\r\n" +
	"DURATION:PT2H\r\n" +
	"SUMMARY:Late deploy\r\n" +
	"ATTENDEE:mailto:bob@example.com\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:cancelled@example.com\r\n" +
	"DTSTAMP:20250220T120000Z\r\n" +
	"DTSTART:20250225T100000Z\r\n" +
	"DTEND:20250225T110000Z\r\n" +
	"STATUS:CANCELLED\r\n" +
	"ATTENDEE:mailto:bob@example.com\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:tomorrow@example.com\r\n" +
	"DTSTAMP:20250220T120000Z\r\n" +
	"DTSTART:20250226T100000Z\r\n" +
	"DTEND:20250226T110000Z\r\n" +
	"ATTENDEE:mailto:bob@example.com\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseICS(t *testing.T) {
	records, stats, err := ParseICS(strings.NewReader(sampleICS), "2025-02-25")
	if err != nil {
		t.Fatalf("ParseICS failed: %v", err)
	}

	if stats.Imported != 2 || stats.Cancelled != 1 || stats.OtherDay != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	standup := records[0]
	if standup.Title != "Standup" || standup.Start != 540 || standup.End != 555 {
		t.Errorf("standup = %+v", standup)
	}
	if got := strings.Join(standup.Attendees, ","); got != "bob@example.com,alice@example.com" {
		t.Errorf("attendees = %q", got)
	}
	if standup.Source != "ics" || standup.Date != "2025-02-25" {
		t.Errorf("source/date = %q/%q", standup.Source, standup.Date)
	}

	late := records[1]
	if late.Start != 23*60 || late.End != 1440 {
		t.Errorf("late event should be clipped to [1380, 1440), got [%d, %d)", late.Start, late.End)
	}
}

func TestParseICS_SkipsEventsEndingBeforeStart(t *testing.T) {
	doc := "BEGIN:VCALENDAR\r\n" +
		"VERSION:2.0\r\n" +
		"PRODID:-//meetslot//test//EN\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:backwards@example.com\r\n" +
		"DTSTAMP:20250220T120000Z\r\n" +
		"DTSTART:20250225T110000Z\r\n" +
		"DTEND:20250225T100000Z\r\n" +
		"SUMMARY:Backwards\r\n" +
		"ATTENDEE:mailto:bob@example.com\r\n" +
		"END:VEVENT\r\n" +
		"BEGIN:VEVENT\r\n" +
		"UID:review@example.com\r\n" +
		"DTSTAMP:20250220T120000Z\r\n" +
		"DTSTART:20250225T130000Z\r\n" +
		"DTEND:20250225T140000Z\r\n" +
		"SUMMARY:Review\r\n" +
		"ATTENDEE:mailto:bob@example.com\r\n" +
		"END:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	records, stats, err := ParseICS(strings.NewReader(doc), "2025-02-25")
	if err != nil {
		t.Fatalf("ParseICS failed: %v", err)
	}
	if stats.EndsEarly != 1 || stats.Imported != 1 {
		t.Errorf("stats = %+v, want 1 imported and 1 ending early", stats)
	}
	if _, err := models.RecordsToEvents(records); err != nil {
		t.Errorf("imported records should all be valid: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Review" {
		t.Errorf("records = %+v", records)
	}
}

func TestParseICS_InvalidDate(t *testing.T) {
	if _, _, err := ParseICS(strings.NewReader(sampleICS), "02/25/2025"); err == nil {
		t.Error("expected error for invalid date")
	}
}

func TestParseICS_Garbage(t *testing.T) {
	if _, _, err := ParseICS(strings.NewReader("not a calendar"), "2025-02-25"); err == nil {
		t.Error("expected decode error")
	}
}

func TestNormalizeAddress(t *testing.T) {
	tests := map[string]string{
		"mailto:Bob@Example.com": "bob@example.com",
		"MAILTO:x@y.z":           "x@y.z",
		" plain ":                "plain",
		"":                       "",
	}
	for in, want := range tests {
		if got := normalizeAddress(in); got != want {
			t.Errorf("normalizeAddress(%q) = %q, want %q", in, got, want)
		}
	}
}
