package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var icsFile, date string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert the events of one day in an iCalendar file to JSON records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if icsFile == "" || date == "" {
				return errors.New("both --ics and --date are required")
			}
			records, stats, err := readICS(icsFile, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "imported %d events (%d cancelled, %d on other days, %d ending before they start, %d without attendees)\n",
				stats.Imported, stats.Cancelled, stats.OtherDay, stats.EndsEarly, stats.NoAttendees)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}
	cmd.Flags().StringVar(&icsFile, "ics", "", "iCalendar file")
	cmd.Flags().StringVar(&date, "date", "", "Day to extract (YYYY-MM-DD)")
	return cmd
}
