package main

import (
	"context"
	"fmt"

	outboxRelay "github.com/SergeyKozhin/event-reminder-backend/internal/business/outbox"
	"github.com/SergeyKozhin/event-reminder-backend/internal/config"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/notifications"
	"github.com/SergeyKozhin/event-reminder-backend/internal/worker"
	"github.com/urfave/cli/v2"
	"github.com/xlab/closer"
	"golang.org/x/sync/errgroup"
)

func workerCommand() *cli.Command {
	return &cli.Command{
		Name:  "worker",
		Usage: "Produce and send reminders, relay and handle integration events.",
		Action: func(c *cli.Context) error {
			logger, err := initLogger()
			if err != nil {
				return fmt.Errorf("unable to initialize logger: %w", err)
			}

			ctx, cancel := context.WithCancel(c.Context)
			closer.Bind(cancel)

			db, err := database.NewPGX(ctx, config.PostgresURL())
			if err != nil {
				return fmt.Errorf("unable to initialize db: %w", err)
			}

			mailSender, err := newMailSender(ctx, logger)
			if err != nil {
				return err
			}

			repos := newRepositories()
			queue := newQueue(logger)

			recovered, err := queue.Recover(ctx)
			if err != nil {
				return fmt.Errorf("recover in-flight messages: %w", err)
			}
			if recovered > 0 {
				logger.Infow("requeued in-flight messages", "count", recovered)
			}

			groupProducer := notifications.NewGroupProducer(db, logger, repos.attendees, repos.events, repos.notifications)
			personalProducer := notifications.NewPersonalProducer(db, logger, repos.events, repos.notifications)
			consumer := notifications.NewConsumer(db, logger, repos.notifications, mailSender)
			relay := outboxRelay.NewRelay(db, repos.outbox, queue, logger)
			handler := worker.New(db, logger, repos.users, repos.events, repos.attendees, mailSender)

			interval := config.WorkerSleepInterval()
			loops := []*notifications.Loop{
				notifications.NewLoop("group-producer", interval, logger, func(ctx context.Context) error {
					_, err := groupProducer.Produce(ctx, config.AttendeesBatchSize())
					return err
				}),
				notifications.NewLoop("personal-producer", interval, logger, func(ctx context.Context) error {
					_, err := personalProducer.Produce(ctx, config.PersonalEventsBatchSize())
					return err
				}),
				notifications.NewLoop("consumer", interval, logger, func(ctx context.Context) error {
					_, err := consumer.Consume(ctx, config.NotificationsBatchSize(), config.NotificationTimeDiscrepancy())
					return err
				}),
				notifications.NewLoop("outbox-relay", interval, logger, func(ctx context.Context) error {
					_, err := relay.Relay(ctx, config.OutboxBatchSize())
					return err
				}),
			}

			var g errgroup.Group
			for _, l := range loops {
				l := l
				g.Go(func() error {
					l.Run(ctx)
					return nil
				})
			}
			g.Go(func() error {
				return queue.Consume(ctx, handler.Handle)
			})

			logger.Infow("Started worker", "interval", interval)
			return g.Wait()
		},
	}
}
