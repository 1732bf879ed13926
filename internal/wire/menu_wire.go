package wire

import (
	"restaurant-menu/internal/adaptor"
	"restaurant-menu/pkg/middleware"
	"restaurant-menu/pkg/shell"

	"go.uber.org/zap"
)

func wireMenu(r *shell.Router, menuHandler *adaptor.MenuHandler, log *zap.Logger) {
	protected := r.With(middleware.RequireSession(log))

	// browsing
	protected.Handle(shell.Command{Name: "menu", Usage: "menu", Summary: "Show the whole menu"}, menuHandler.Menu)
	protected.Handle(shell.Command{Name: "item", Usage: "item <id>", Summary: "Show one menu item"}, menuHandler.Item)
	protected.Handle(shell.Command{Name: "search", Usage: "search <text>", Summary: "Search names and descriptions"}, menuHandler.Search)
	protected.Handle(shell.Command{Name: "category", Usage: "category <id>", Summary: "Show available items in a category"}, menuHandler.Category)
	protected.Handle(shell.Command{Name: "stats", Usage: "stats", Summary: "Show menu statistics"}, menuHandler.Stats)

	// management (admin)
	protected.Handle(shell.Command{
		Name:    "add-item",
		Usage:   "add-item --name NAME --price PRICE [--category ID] [--prep-time MIN] [--unavailable] ...",
		Summary: "Add a menu item (admin)",
	}, menuHandler.AddItem)
	protected.Handle(shell.Command{
		Name:    "update-item",
		Usage:   "update-item <id> [--name ..] [--price ..] [--category ID | --clear-category] [--available=BOOL] ...",
		Summary: "Change a menu item (admin)",
	}, menuHandler.UpdateItem)
	protected.Handle(shell.Command{
		Name:    "toggle",
		Usage:   "toggle <id> [on|off]",
		Summary: "Change item availability (admin)",
	}, menuHandler.Toggle)
	protected.Handle(shell.Command{
		Name:    "delete-item",
		Usage:   "delete-item <id> [--yes]",
		Summary: "Delete a menu item (admin)",
	}, menuHandler.DeleteItem)
}
