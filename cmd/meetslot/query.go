package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"meetslot/models"
	"meetslot/services/calendar"
	"meetslot/services/meeting"

	"github.com/spf13/cobra"
)

type queryOptions struct {
	eventsFile string
	icsFile    string
	date       string
	required   []string
	optional   []string
	duration   int
	jsonOutput bool
}

func newQueryCmd() *cobra.Command {
	opts := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the ranges where a meeting fits",
		Example: `  meetslot query --events day.json --required alice,bob --duration 30
  meetslot query --ics team.ics --date 2024-05-02 --required alice --optional carol --duration 60 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.eventsFile, "events", "", "JSON file with a list of event records")
	f.StringVar(&opts.icsFile, "ics", "", "iCalendar file to read events from")
	f.StringVar(&opts.date, "date", "", "Day to resolve (YYYY-MM-DD); required with --ics")
	f.StringSliceVar(&opts.required, "required", nil, "Required attendees")
	f.StringSliceVar(&opts.optional, "optional", nil, "Optional attendees")
	f.IntVar(&opts.duration, "duration", 30, "Meeting length in minutes")
	f.BoolVar(&opts.jsonOutput, "json", false, "Output ranges as JSON")
	cmd.MarkFlagsMutuallyExclusive("events", "ics")
	return cmd
}

func runQuery(cmd *cobra.Command, opts *queryOptions) error {
	if opts.duration < 0 {
		return fmt.Errorf("duration must not be negative, got %d", opts.duration)
	}

	records, err := loadRecords(opts.eventsFile, opts.icsFile, opts.date)
	if err != nil {
		return err
	}
	events, err := models.RecordsToEvents(records)
	if err != nil {
		return err
	}

	request := models.NewMeetingRequest(opts.required, opts.optional, opts.duration)
	ranges := meeting.Query(events, request)
	intervals := models.ToAvailableIntervals(ranges)

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(intervals)
	}

	if len(intervals) == 0 {
		fmt.Fprintln(out, "No free range fits the request.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "START\tEND\tMINUTES")
	for _, r := range ranges {
		fmt.Fprintf(w, "%s\t%s\t%d\n", models.FormatMinutes(r.Start()), models.FormatMinutes(r.End()), r.Duration())
	}
	return w.Flush()
}

// loadRecords reads events from exactly one of the two sources. JSON records
// carrying a different date than the requested one are skipped.
func loadRecords(eventsFile, icsFile, date string) ([]models.EventRecord, error) {
	switch {
	case eventsFile != "":
		data, err := os.ReadFile(eventsFile)
		if err != nil {
			return nil, fmt.Errorf("read events: %w", err)
		}
		var records []models.EventRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode events %s: %w", eventsFile, err)
		}
		if date == "" {
			return records, nil
		}
		kept := records[:0]
		for _, rec := range records {
			if rec.Date == "" || strings.EqualFold(rec.Date, date) {
				kept = append(kept, rec)
			}
		}
		return kept, nil

	case icsFile != "":
		if date == "" {
			return nil, errors.New("--date is required with --ics")
		}
		records, _, err := readICS(icsFile, date)
		return records, err

	default:
		// No calendar: everyone is free all day.
		return nil, nil
	}
}

func readICS(path, date string) ([]models.EventRecord, calendar.ImportStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, calendar.ImportStats{}, fmt.Errorf("open calendar: %w", err)
	}
	defer f.Close()
	return calendar.ParseICS(f, date)
}
