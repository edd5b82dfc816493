package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/talmaimon/basecycle/pkg/core/schedule"
	"github.com/talmaimon/basecycle/pkg/core/services"
)

type restCheckFile struct {
	PersonID string `json:"person_id"`
	Shifts   []struct {
		SegmentID    string    `json:"segment_id"`
		Start        time.Time `json:"start"`
		End          time.Time `json:"end"`
		MinRestHours int       `json:"min_rest_hours"`
	} `json:"shifts"`
}

// CheckRestCmd creates the checkRest command
func CheckRestCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "checkRest <assignments.json>",
		Short: "Check a person's shift assignments for minimum-rest violations",
		Long: `Reads a JSON file with a person's assignments and reports every pair of
consecutive shifts whose gap falls short of the required rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read assignments file: %w", err)
			}

			var file restCheckFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse assignments file: %w", err)
			}

			assignments := make([]schedule.ShiftInstance, len(file.Shifts))
			for i, s := range file.Shifts {
				assignments[i] = schedule.ShiftInstance{
					SegmentID:    s.SegmentID,
					Start:        s.Start,
					End:          s.End,
					MinRestAfter: time.Duration(s.MinRestHours) * time.Hour,
				}
			}

			violations := services.ReviewAssignments(app.Logger, file.PersonID, assignments)
			if len(violations) == 0 {
				fmt.Println("No rest violations.")
				return nil
			}

			for _, v := range violations {
				fmt.Printf("%s ends %s, %s starts %s: %.1fh rest (need %.1fh, short %.1fh)\n",
					v.First.SegmentID, v.First.End.Format("2006-01-02 15:04"),
					v.Second.SegmentID, v.Second.Start.Format("2006-01-02 15:04"),
					v.ActualRest.Hours(), v.RequiredRest.Hours(), v.Shortfall.Hours())
			}
			return fmt.Errorf("%d rest violation(s) found", len(violations))
		},
	}
}
