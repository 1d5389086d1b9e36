package main

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/business/dispatch"
	"github.com/SergeyKozhin/event-reminder-backend/internal/business/handlers"
	"github.com/SergeyKozhin/event-reminder-backend/internal/business/uow"
	"github.com/SergeyKozhin/event-reminder-backend/internal/config"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/attendee"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/events"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/friendship"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/invitation"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/notification"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/outbox"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/user"
	"github.com/SergeyKozhin/event-reminder-backend/internal/pkg/mail"
	"github.com/SergeyKozhin/event-reminder-backend/internal/redis"
	"go.uber.org/zap"
)

type repositories struct {
	users         *user.Repository
	events        *events.Repository
	attendees     *attendee.Repository
	notifications *notification.Repository
	invitations   *invitation.Repository
	friendships   *friendship.Repository
	outbox        *outbox.Repository
}

func newRepositories() *repositories {
	return &repositories{
		users:         user.NewRepository(),
		events:        events.NewRepository(),
		attendees:     attendee.NewRepository(),
		notifications: notification.NewRepository(),
		invitations:   invitation.NewRepository(),
		friendships:   friendship.NewRepository(),
		outbox:        outbox.NewRepository(),
	}
}

func newQueue(logger *zap.SugaredLogger) *redis.Queue {
	pool := redis.NewRedisPool(config.RedisURL(), logger)
	return redis.NewQueue(pool, config.QueueName(), logger)
}

func newUnitOfWork(db database.PGX, repos *repositories, queue *redis.Queue, logger *zap.SugaredLogger) *uow.UnitOfWork {
	dispatcher := dispatch.NewDispatcher()
	handlers.New(
		repos.events,
		repos.attendees,
		repos.notifications,
		repos.invitations,
		repos.friendships,
	).Register(dispatcher)

	return uow.New(db, dispatcher, repos.outbox, queue, logger)
}

func newMailSender(ctx context.Context, logger *zap.SugaredLogger) (*mail.Sender, error) {
	if config.MailDryRun() {
		logger.Infow("mail dry run, emails are only logged")
		return mail.NewSender(mail.NewLogTransport(logger)), nil
	}

	transport, err := mail.NewGmailTransport(
		ctx,
		config.MailFrom(),
		config.ClientSecretPath(),
		config.ClientType(),
		config.GmailRefreshToken(),
	)
	if err != nil {
		return nil, fmt.Errorf("init gmail: %w", err)
	}

	return mail.NewSender(transport), nil
}
