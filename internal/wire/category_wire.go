package wire

import (
	"restaurant-menu/internal/adaptor"
	"restaurant-menu/pkg/middleware"
	"restaurant-menu/pkg/shell"

	"go.uber.org/zap"
)

func wireCategory(r *shell.Router, categoryHandler *adaptor.CategoryHandler, log *zap.Logger) {
	protected := r.With(middleware.RequireSession(log))

	protected.Handle(shell.Command{
		Name:    "categories",
		Usage:   "categories [--all]",
		Summary: "List categories",
	}, categoryHandler.Categories)
	protected.Handle(shell.Command{
		Name:    "add-category",
		Usage:   "add-category <name> [--description TEXT]",
		Summary: "Add a category (admin)",
	}, categoryHandler.AddCategory)
	protected.Handle(shell.Command{
		Name:    "deactivate-category",
		Usage:   "deactivate-category <id>",
		Summary: "Hide a category (admin)",
	}, categoryHandler.DeactivateCategory)
}
