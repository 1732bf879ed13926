package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"restaurant-menu/internal/adaptor"
	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/data/entity"
	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/usecase"
	"restaurant-menu/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultCategories are created by bootstrap --seed-categories.
var defaultCategories = []request.CategoryRequest{
	{Name: "Appetizers", Description: utils.OptionalString("Starters and small plates")},
	{Name: "Main Courses", Description: utils.OptionalString("Main dishes")},
	{Name: "Desserts", Description: utils.OptionalString("Sweet treats")},
	{Name: "Beverages", Description: utils.OptionalString("Drinks and refreshments")},
	{Name: "Salads", Description: utils.OptionalString("Fresh salads")},
}

type userFlags struct {
	username string
	password string
	fullName string
	email    string
}

func (f *userFlags) bind(c *cobra.Command, withPassword bool) {
	c.Flags().StringVar(&f.username, "username", "", "login name")
	c.Flags().StringVar(&f.fullName, "full-name", "", "display name")
	c.Flags().StringVar(&f.email, "email", "", "email address")
	if withPassword {
		c.Flags().StringVar(&f.password, "password", "", "password (prompted when empty)")
	}
	_ = c.MarkFlagRequired("username")
}

// resolvePassword prompts for a password unless one was passed on the command line.
func (f *userFlags) resolvePassword() error {
	if f.password != "" {
		return nil
	}
	prompter, err := newReadlinePrompter("")
	if err != nil {
		return err
	}
	defer prompter.Close()

	f.password, err = adaptor.ReadNewPassword(prompter)
	return err
}

func (f *userFlags) request(role string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: f.username,
		Password: f.password,
		Role:     role,
		FullName: utils.OptionalString(f.fullName),
		Email:    utils.OptionalString(f.email),
	}
}

func newBootstrapCommand(opts *options) *cobra.Command {
	flags := &userFlags{}
	var seed bool

	c := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the first admin account on an empty database",
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

			out := c.OutOrStdout()
			user, err := rt.app.Service.Auth.Bootstrap(c.Context(), flags.request(string(entity.RoleAdmin)))
			if err != nil {
				return err
			}
			utils.ResponseSuccess(out, fmt.Sprintf("Admin %s created with id %d.", user.Username, user.ID))

			if !seed {
				return nil
			}
			return seedCategories(c.Context(), rt.app.Service, flags, out, rt.logger)
		},
	}

	flags.bind(c, true)
	c.Flags().BoolVar(&seed, "seed-categories", false, "also create the default categories")
	return c
}

// seedCategories logs in as the new admin and adds the default categories.
// Categories that already exist are skipped.
func seedCategories(ctx context.Context, svc *usecase.Service, flags *userFlags, out io.Writer, log *zap.Logger) error {
	session, err := svc.Auth.Authenticate(ctx, &request.LoginRequest{
		Username: flags.username,
		Password: flags.password,
	})
	if err != nil {
		return err
	}
	defer svc.Auth.Logout(ctx, session)

	created := 0
	for _, c := range defaultCategories {
		req := c
		if _, err := svc.Category.AddCategory(ctx, session, &req); err != nil {
			if errors.Is(err, apperr.ErrDuplicateCategory) {
				log.Info("Default category already present", zap.String("name", c.Name))
				continue
			}
			return err
		}
		created++
	}

	utils.ResponseSuccess(out, fmt.Sprintf("%d default categories created.", created))
	return nil
}
