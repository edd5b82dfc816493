package commands

import (
	"github.com/spf13/cobra"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
)

// addRangeFlags registers the --from/--to flags shared by every command that
// computes over a date window.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "First day of the window (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last day of the window (YYYY-MM-DD)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
}

func rangeFromFlags(cmd *cobra.Command) (schedule.DateRange, error) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	from, err := schedule.ParseDateKey(fromStr)
	if err != nil {
		return schedule.DateRange{}, err
	}
	to, err := schedule.ParseDateKey(toStr)
	if err != nil {
		return schedule.DateRange{}, err
	}
	return schedule.NewDateRange(from, to)
}
