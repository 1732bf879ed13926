package cmd

import (
	"fmt"

	"restaurant-menu/internal/data/entity"
	"restaurant-menu/pkg/utils"

	"github.com/spf13/cobra"
)

func newRegisterCommand(opts *options) *cobra.Command {
	flags := &userFlags{}

	c := &cobra.Command{
		Use:   "register",
		Short: "Create a staff account",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			rt, err := setup(opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := flags.resolvePassword(); err != nil {
				return err
			}

			// self-registration never carries a session, so only staff can be created
			user, err := rt.app.Service.Auth.Register(c.Context(), nil, flags.request(string(entity.RoleStaff)))
			if err != nil {
				return err
			}
			utils.ResponseSuccess(c.OutOrStdout(), fmt.Sprintf("Staff account %s created with id %d.", user.Username, user.ID))
			return nil
		},
	}

	flags.bind(c, false)
	return c
}
