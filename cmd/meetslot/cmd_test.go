package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"meetslot/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const dayJSON = `[
  {"title": "Event 1", "date": "2024-05-02", "start": 480, "end": 510, "attendees": ["Person A"]},
  {"title": "Event 2", "date": "2024-05-02", "start": 540, "end": 600, "attendees": ["Person B"]},
  {"title": "Other day", "date": "2024-05-03", "start": 0, "end": 1440, "attendees": ["Person A"]}
]`

func TestQueryCmd_JSON(t *testing.T) {
	path := writeFile(t, "day.json", dayJSON)
	out, err := execute(t, "query", "--events", path, "--date", "2024-05-02",
		"--required", "Person A,Person B", "--duration", "30", "--json")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	var got []models.AvailableInterval
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := [][2]int{{0, 480}, {510, 540}, {600, 1440}}
	if len(got) != len(want) {
		t.Fatalf("got %d ranges, want %d: %s", len(got), len(want), out)
	}
	for i, w := range want {
		if got[i].Start != w[0] || got[i].End != w[1] {
			t.Errorf("range %d = [%d,%d), want [%d,%d)", i, got[i].Start, got[i].End, w[0], w[1])
		}
	}
}

func TestQueryCmd_Table(t *testing.T) {
	path := writeFile(t, "day.json", dayJSON)
	out, err := execute(t, "query", "--events", path, "--date", "2024-05-02",
		"--required", "Person A", "--duration", "60")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	for _, want := range []string{"START", "00:00", "08:00", "08:30", "24:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQueryCmd_NoSlot(t *testing.T) {
	out, err := execute(t, "query", "--duration", "1441")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !strings.Contains(out, "No free range") {
		t.Errorf("output = %q", out)
	}
}

func TestQueryCmd_Errors(t *testing.T) {
	bad := writeFile(t, "bad.json", `[{"title":"x","start":600,"end":500,"attendees":["a"]}]`)
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"query", "--events", "/does/not/exist.json"}},
		{"invalid range", []string{"query", "--events", bad, "--required", "a"}},
		{"ics without date", []string{"query", "--ics", bad}},
		{"negative duration", []string{"query", "--duration", "-5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

const dayICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//meetslot//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:review@example.com\r\n" +
	"DTSTAMP:20240501T120000Z\r\n" +
	"DTSTART:20240502T100000Z\r\n" +
	"DTEND:20240502T110000Z\r\n" +
	"SUMMARY:Review\r\n" +
	"ATTENDEE:mailto:alice@example.com\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestImportCmd(t *testing.T) {
	path := writeFile(t, "team.ics", dayICS)
	out, err := execute(t, "import", "--ics", path, "--date", "2024-05-02")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	var records []models.EventRecord
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(records) != 1 || records[0].Start != 600 || records[0].End != 660 {
		t.Errorf("records = %+v", records)
	}
}

func TestQueryCmd_ICS(t *testing.T) {
	path := writeFile(t, "team.ics", dayICS)
	out, err := execute(t, "query", "--ics", path, "--date", "2024-05-02",
		"--required", "alice@example.com", "--duration", "30", "--json")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !strings.Contains(out, `"start": 660`) {
		t.Errorf("expected a range starting at 660:\n%s", out)
	}
}
