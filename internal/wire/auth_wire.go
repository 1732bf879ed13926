package wire

import (
	"restaurant-menu/internal/adaptor"
	"restaurant-menu/pkg/middleware"
	"restaurant-menu/pkg/shell"

	"go.uber.org/zap"
)

func wireAuth(r *shell.Router, authHandler *adaptor.AuthHandler, log *zap.Logger) {
	// public
	r.Handle(shell.Command{Name: "login", Usage: "login [username]", Summary: "Log in"}, authHandler.Login)

	// requires login
	protected := r.With(middleware.RequireSession(log))
	protected.Handle(shell.Command{Name: "logout", Usage: "logout", Summary: "End the current session"}, authHandler.Logout)
	protected.Handle(shell.Command{Name: "whoami", Usage: "whoami", Summary: "Show the current session"}, authHandler.WhoAmI)
	protected.Handle(shell.Command{
		Name:    "register-user",
		Usage:   "register-user --username NAME [--role staff|admin] [--full-name ..] [--email ..]",
		Summary: "Create a user account (admin)",
	}, authHandler.RegisterUser)
}
