package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "meetslot",
		Short: "Find free meeting slots in a day of calendar events",
		Long: `meetslot resolves the ranges of a day in which a meeting of a given
length fits around the attendees' existing events.

Events come from a JSON file of event records or an iCalendar file.
Optional attendees are honoured when possible; otherwise only the
required attendees are considered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newQueryCmd())
	root.AddCommand(newImportCmd())
	return root
}
