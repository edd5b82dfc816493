package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talmaimon/basecycle/pkg/core/services"
)

// BuildScheduleCmd creates the buildSchedule command
func BuildScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildSchedule <task-id>",
		Short: "Expand a task's segment templates into concrete shifts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}

			result, err := services.BuildSchedule(app.Ctx, app.Store, app.Store, app.Logger, args[0], r)
			if err != nil {
				return err
			}

			if len(result.Shifts) == 0 {
				fmt.Println("No shifts in the requested window.")
				return nil
			}

			for _, shift := range result.Shifts {
				fmt.Printf("%s → %s  %-20s  %d required\n",
					shift.Shift.Start.Format("2006-01-02 15:04"),
					shift.Shift.End.Format("2006-01-02 15:04"),
					shift.SegmentName,
					shift.Staffing.Required)
			}

			if len(result.Warnings) > 0 {
				fmt.Println()
				for _, w := range result.Warnings {
					fmt.Printf("WARNING: segment %q references deleted role %s\n", w.SegmentName, w.RoleID)
				}
				fmt.Printf("%d stale role reference(s); review the affected segments.\n", len(result.Warnings))
			}

			fmt.Printf("\n%d shift(s) between %s and %s.\n", len(result.Shifts), r.Start, r.End)
			return nil
		},
	}

	addRangeFlags(cmd)
	return cmd
}
