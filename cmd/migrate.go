package cmd

import (
	"fmt"

	"restaurant-menu/pkg/database"

	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			rt, err := setup(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := database.Migrate(c.Context(), rt.db, rt.logger); err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}
