package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
	"github.com/talmaimon/basecycle/pkg/db"
)

// AddTeamCmd creates the addTeam command
func AddTeamCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addTeam <name>",
		Short: "Create a team with its rotation definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startStr, _ := cmd.Flags().GetString("start")
			daysOnBase, _ := cmd.Flags().GetInt("days-on-base")
			daysAtHome, _ := cmd.Flags().GetInt("days-at-home")

			start, err := schedule.ParseDateKey(startStr)
			if err != nil {
				return err
			}

			teamID := uuid.New().String()
			def := schedule.RotationDefinition{
				TeamID:     teamID,
				StartDate:  start,
				DaysOnBase: daysOnBase,
				DaysAtHome: daysAtHome,
			}
			if err := def.Validate(); err != nil {
				return err
			}

			app.Logger.Info("Creating team",
				zap.String("team_id", teamID),
				zap.String("name", args[0]),
				zap.Int("days_on_base", daysOnBase),
				zap.Int("days_at_home", daysAtHome))

			if err := app.Store.InsertTeam(app.Ctx, &db.TeamRecord{ID: teamID, Name: args[0]}); err != nil {
				return err
			}
			rec := &db.RotationRecord{
				TeamID:     teamID,
				StartDate:  start.String(),
				DaysOnBase: daysOnBase,
				DaysAtHome: daysAtHome,
			}
			if err := app.Store.ReplaceRotation(app.Ctx, rec); err != nil {
				return err
			}

			fmt.Printf("Created team %q with ID %s (cycle length %d days)\n", args[0], teamID, def.CycleLength())
			return nil
		},
	}

	cmd.Flags().String("start", "", "Rotation start date (YYYY-MM-DD)")
	cmd.Flags().Int("days-on-base", 0, "Days on base per cycle")
	cmd.Flags().Int("days-at-home", 0, "Days at home per cycle")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("days-on-base")
	cmd.MarkFlagRequired("days-at-home")

	return cmd
}
