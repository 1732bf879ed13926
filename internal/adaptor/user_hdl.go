package adaptor

import (
	"context"
	"fmt"

	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/dto/response"
	"restaurant-menu/internal/usecase"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Profile handles: profile [--full-name ..] [--email ..]
// Without flags it shows the profile; an empty value clears a field.
func (h *UserHandler) Profile(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	fs.String("full-name", "", "display name")
	fs.String("email", "", "email address")
	if err := req.Parse(fs); err != nil {
		return err
	}

	session := req.State.Session()
	profile, err := h.service.GetProfile(ctx, session)
	if err != nil {
		return err
	}

	if fs.Changed("full-name") || fs.Changed("email") {
		update := &request.UpdateProfileRequest{
			FullName: profile.FullName,
			Email:    profile.Email,
		}
		if v := changedString(fs, "full-name"); v != nil {
			update.FullName = utils.OptionalString(*v)
		}
		if v := changedString(fs, "email"); v != nil {
			update.Email = utils.OptionalString(*v)
		}

		profile, err = h.service.UpdateProfile(ctx, session, update)
		if err != nil {
			return err
		}
		utils.ResponseSuccess(req.Out, "Profile updated.")
	}

	utils.ResponseKeyValue(req.Out, "Profile", [][2]string{
		{"ID", fmt.Sprint(profile.ID)},
		{"Username", profile.Username},
		{"Role", string(profile.Role)},
		{"Full name", utils.Deref(profile.FullName, "-")},
		{"Email", utils.Deref(profile.Email, "-")},
		{"Member since", profile.CreatedAt.Format("2006-01-02")},
	})
	return nil
}

// Users handles: users
func (h *UserHandler) Users(ctx context.Context, req *shell.Request) error {
	users, err := h.service.ListUsers(ctx, req.State.Session())
	if err != nil {
		return err
	}

	utils.ResponseTable(req.Out, "Users", table.Row{"ID", "Username", "Role", "Full name", "Email", "Created"}, userRows(users))
	return nil
}

func userRows(users []response.UserResponse) []table.Row {
	rows := make([]table.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, table.Row{
			u.ID,
			u.Username,
			u.Role,
			utils.Deref(u.FullName, "-"),
			utils.Deref(u.Email, "-"),
			u.CreatedAt.Format("2006-01-02"),
		})
	}
	return rows
}
