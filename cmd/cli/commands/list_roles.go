package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ListRolesCmd creates the listRoles command
func ListRolesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRoles",
		Short: "List the current role catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			roles, err := app.Store.GetRoles(app.Ctx)
			if err != nil {
				return err
			}

			if len(roles) == 0 {
				fmt.Println("No roles defined.")
				return nil
			}
			for _, role := range roles {
				fmt.Printf("%-36s  %s\n", role.ID, role.Name)
			}
			return nil
		},
	}
}
