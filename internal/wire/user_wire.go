package wire

import (
	"restaurant-menu/internal/adaptor"
	"restaurant-menu/pkg/middleware"
	"restaurant-menu/pkg/shell"

	"go.uber.org/zap"
)

// wireUser registers profile and user management commands. Role checks
// happen in the services, so a staff call to users fails there.
func wireUser(r *shell.Router, userHandler *adaptor.UserHandler, log *zap.Logger) {
	protected := r.With(middleware.RequireSession(log))

	protected.Handle(shell.Command{
		Name:    "profile",
		Usage:   "profile [--full-name NAME] [--email ADDR]",
		Summary: "Show or update your profile",
	}, userHandler.Profile)

	protected.Handle(shell.Command{
		Name:    "users",
		Usage:   "users",
		Summary: "List users (admin)",
	}, userHandler.Users)
}
