package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talmaimon/basecycle/pkg/core/services"
)

// TeamStatusCmd creates the teamStatus command
func TeamStatusCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teamStatus <team-id>",
		Short: "Show a team's rotation status for each day in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}

			entries, err := services.TeamCalendar(app.Ctx, app.Store, app.Logger, args[0], r)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				fmt.Printf("%s  %s  %s\n", entry.Date, entry.Date.Weekday().String()[:3], entry.Status)
			}
			return nil
		},
	}

	addRangeFlags(cmd)
	return cmd
}
