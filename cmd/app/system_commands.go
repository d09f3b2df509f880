package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mejla/cmd/app/commands"
	"github.com/allisson/mejla/internal/app"
	"github.com/allisson/mejla/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "migrate",
			Usage: "Run database migrations for the postgres and mysql settings stores",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				if cfg.SettingsStore == config.StoreFile {
					return fmt.Errorf("settings store %q has no migrations", cfg.SettingsStore)
				}

				container.Logger().Info("migrate", slog.String("version", version))
				return commands.RunMigrations(container.Logger(), cfg.MigrationsPath(), cfg.DBConnectionString)
			},
		},
	}
}
