// Package cmd holds the restaurant-menu command tree.
package cmd

import (
	"context"
	"fmt"
	"log"

	"restaurant-menu/internal/data/repository"
	"restaurant-menu/internal/wire"
	"restaurant-menu/pkg/database"
	"restaurant-menu/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	debug      bool
}

// runtime is everything a subcommand needs once config, logger and database are up.
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     database.PgxIface
	app    *wire.App
}

func (rt *runtime) Close() {
	if rt.db != nil {
		rt.db.Close()
	}
	_ = rt.logger.Sync()
}

// NewRootCommand builds the command tree. Running it without a subcommand opens the shell.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "restaurant-menu",
		Short:         "Restaurant menu management",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return runShell(c.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", ".env", "path to the env config file")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug logging to stderr")

	root.AddCommand(
		newShellCommand(opts),
		newMigrateCommand(opts),
		newBootstrapCommand(opts),
		newRegisterCommand(opts),
	)
	return root
}

// Execute runs the root command with a background context.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

func newShellCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open the interactive shell (default)",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runShell(c.Context(), opts)
		},
	}
}

// setup loads config, starts the logger and connects to the database.
func setup(opts *options) (*runtime, error) {
	// Load config
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	debug := opts.debug || config.App.Debug

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		_ = logger.Sync()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("database", config.Database.Name),
	)

	repos := repository.NewRepository(db, logger)

	return &runtime{
		config: config,
		logger: logger,
		db:     db,
		app:    wire.Wiring(repos, config, logger),
	}, nil
}
