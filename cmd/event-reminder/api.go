package main

import (
	"fmt"
	"net/http"

	"github.com/SergeyKozhin/event-reminder-backend/internal/api"
	eventsService "github.com/SergeyKozhin/event-reminder-backend/internal/business/events"
	friendshipsService "github.com/SergeyKozhin/event-reminder-backend/internal/business/friendships"
	invitationsService "github.com/SergeyKozhin/event-reminder-backend/internal/business/invitations"
	"github.com/SergeyKozhin/event-reminder-backend/internal/config"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/pkg/jwt"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func apiCommand() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Serve the HTTP API.",
		Action: func(c *cli.Context) error {
			logger, err := initLogger()
			if err != nil {
				return fmt.Errorf("unable to initialize logger: %w", err)
			}

			jwts, err := jwt.NewManager(config.Secret(), config.JwtTTL())
			if err != nil {
				return err
			}

			db, err := database.NewPGX(c.Context, config.PostgresURL())
			if err != nil {
				return fmt.Errorf("unable to initialize db: %w", err)
			}

			repos := newRepositories()
			work := newUnitOfWork(db, repos, newQueue(logger), logger)

			a := api.NewApi(
				logger,
				jwts,
				db,
				repos.users,
				eventsService.NewService(db, work, repos.events, repos.attendees, repos.invitations, repos.friendships),
				invitationsService.NewService(work, repos.invitations),
				friendshipsService.NewService(db, work, repos.friendships),
			)

			errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
			if err != nil {
				return fmt.Errorf("error initiating server logger: %w", err)
			}

			server := &http.Server{
				Addr:     ":" + config.Port(),
				Handler:  a,
				ErrorLog: errLogger,
			}

			logger.Infow("Started server", "port", config.Port())
			return server.ListenAndServe()
		},
	}
}
