package main

import (
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/config"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/urfave/cli/v2"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations.",
		Action: func(c *cli.Context) error {
			logger, err := initLogger()
			if err != nil {
				return fmt.Errorf("unable to initialize logger: %w", err)
			}

			results, err := database.Migrate(c.Context, config.PostgresURL())
			if err != nil {
				return err
			}

			for _, r := range results {
				logger.Infow("migration applied", "version", r.Source.Version, "file", r.Source.Path, "duration", r.Duration)
			}
			logger.Infow("migrations done", "applied", len(results))

			return nil
		},
	}
}
