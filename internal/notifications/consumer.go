package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type reminderSender interface {
	SendReminder(ctx context.Context, to *model.User, subject, body string) error
}

type Consumer struct {
	db            database.PGX
	logger        *zap.SugaredLogger
	notifications notificationsRepository
	mail          reminderSender
	now           func() time.Time
}

func NewConsumer(
	db database.PGX,
	logger *zap.SugaredLogger,
	notifications notificationsRepository,
	mail reminderSender,
) *Consumer {
	return &Consumer{
		db:            db,
		logger:        logger,
		notifications: notifications,
		mail:          mail,
		now:           time.Now,
	}
}

type delivery struct {
	notification *model.Notification
	user         *model.User
	subject      string
	body         string
}

// Consume sends up to batchSize unsent reminders due within
// [now-discrepancy, now+discrepancy], earliest first. Emails go out
// concurrently and a failed email does not keep its reminder unsent. It
// returns the number of emails sent successfully.
func (c *Consumer) Consume(ctx context.Context, batchSize int, discrepancyMinutes int) (int, error) {
	utcNow := c.now().UTC()
	discrepancy := time.Duration(discrepancyMinutes) * time.Minute

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	due, err := c.notifications.GetDueNotifications(ctx, tx, model.DueNotificationsFilter{
		From:  utcNow.Add(-discrepancy),
		To:    utcNow.Add(discrepancy),
		Limit: batchSize,
	})
	if err != nil {
		return 0, fmt.Errorf("notificationsRepository.GetDueNotifications: %w", err)
	}

	if len(due) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(due))
	deliveries := make([]*delivery, 0, len(due))
	for _, dn := range due {
		n := dn.Notification

		subject, body, renderErr := n.NotificationType.CreateNotificationEmail(n, dn.Event, dn.User)

		if err := n.MarkAsSent(); err != nil {
			c.logger.Debugw("skip reminder", "id", n.ID, "err", err)
			continue
		}
		ids = append(ids, n.ID)

		// An unrenderable reminder is claimed without an email so it is not
		// selected again on every pass.
		if renderErr != nil {
			c.logger.Errorw("render reminder, dropping it", "id", n.ID, "err", renderErr)
			continue
		}

		deliveries = append(deliveries, &delivery{
			notification: n,
			user:         dn.User,
			subject:      subject,
			body:         body,
		})
	}

	claimed, err := c.notifications.ClaimSentNotifications(ctx, tx, ids)
	if err != nil {
		return 0, fmt.Errorf("notificationsRepository.ClaimSentNotifications: %w", err)
	}

	claimedSet := toSet(claimed)

	var g errgroup.Group
	sent := make([]bool, len(deliveries))
	for i, d := range deliveries {
		i, d := i, d
		if _, ok := claimedSet[d.notification.ID]; !ok {
			continue
		}

		g.Go(func() error {
			if err := c.mail.SendReminder(ctx, d.user, d.subject, d.body); err != nil {
				c.logger.Errorw("send reminder", "id", d.notification.ID, "user", d.user.ID, "err", err)
				return nil
			}
			sent[i] = true
			return nil
		})
	}
	_ = g.Wait()

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	count := 0
	for _, ok := range sent {
		if ok {
			count++
		}
	}

	c.logger.Debugw("reminders consumed", "due", len(due), "claimed", len(claimed), "sent", count)

	return count, nil
}
