// internal/wire/wire.go
package wire

import (
	"context"

	"restaurant-menu/internal/adaptor"
	"restaurant-menu/internal/data/repository"
	"restaurant-menu/internal/usecase"
	"restaurant-menu/pkg/middleware"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

// App holds everything the entry points need.
type App struct {
	Router  *shell.Router
	Service *usecase.Service
}

// Wiring builds services, handlers and the command router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, config, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *shell.Router {
	r := shell.NewRouter()

	// global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Timeout(config.Shell.CommandTimeout))

	wireAuth(r, handler.Auth, logger)
	wireUser(r, handler.User, logger)
	wireMenu(r, handler.Menu, logger)
	wireCategory(r, handler.Category, logger)

	r.Handle(shell.Command{Name: "help", Usage: "help", Summary: "List commands"}, helpHandler(r))
	r.Handle(shell.Command{Name: "exit", Usage: "exit", Summary: "Log out and leave the shell"},
		func(ctx context.Context, req *shell.Request) error {
			return shell.ErrExit
		})

	return r
}

func helpHandler(r *shell.Router) shell.HandlerFunc {
	return func(ctx context.Context, req *shell.Request) error {
		rows := []table.Row{}
		for _, c := range r.Commands() {
			rows = append(rows, table.Row{c.Usage, c.Summary})
		}
		utils.ResponseTable(req.Out, "Commands", table.Row{"Command", "Description"}, rows)
		return nil
	}
}
