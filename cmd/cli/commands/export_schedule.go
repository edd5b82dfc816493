package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/talmaimon/basecycle/pkg/core/services"
)

// ExportScheduleCmd creates the exportSchedule command
func ExportScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportSchedule <task-id>",
		Short: "Export a task's expanded schedule as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}
			outPath, _ := cmd.Flags().GetString("out")

			result, err := services.BuildSchedule(app.Ctx, app.Store, app.Store, app.Logger, args[0], r)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outPath != "" {
				out, err = os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer out.Close()
			}

			if err := services.ExportSchedule(out, result); err != nil {
				return err
			}

			if outPath != "" {
				fmt.Printf("Wrote %d shift(s) to %s\n", len(result.Shifts), outPath)
			}
			return nil
		},
	}

	addRangeFlags(cmd)
	cmd.Flags().String("out", "", "Output file (default: stdout)")
	return cmd
}
