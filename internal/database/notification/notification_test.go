package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database/events"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/notification"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/testhelper"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_DueNotificationsLifecycle(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()

	eventsRepo := events.NewRepository()
	repo := notification.NewRepository()

	// A window far away from other tests' data.
	now := time.Date(2091, 1, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-72 * time.Hour)

	user := testhelper.CreateUser(t, db)

	event := model.NewGroupEvent(model.EventCreate{
		UserID:      user.ID,
		Name:        "Release party",
		Category:    model.EventCategoryMeeting,
		DateTimeUTC: now.Add(time.Hour),
	}, created)
	require.NoError(t, eventsRepo.CreateGroupEvent(ctx, db, event))

	cancelled := model.NewGroupEvent(model.EventCreate{
		UserID:      user.ID,
		Name:        "Cancelled party",
		DateTimeUTC: now.Add(time.Hour),
	}, created)
	cancelled.Cancelled = true
	require.NoError(t, eventsRepo.CreateGroupEvent(ctx, db, cancelled))

	due := model.NotificationTypeHourBefore.TryCreateNotification(&event.Event, user.ID, created)
	later := model.NotificationTypeFifteenMinutesBefore.TryCreateNotification(&event.Event, user.ID, created)
	ofCancelled := model.NotificationTypeHourBefore.TryCreateNotification(&cancelled.Event, user.ID, created)
	require.NoError(t, repo.CreateNotifications(ctx, db, []*model.Notification{due, later, ofCancelled}))

	filter := model.DueNotificationsFilter{From: now.Add(-5 * time.Minute), To: now.Add(5 * time.Minute), Limit: 10}

	res, err := repo.GetDueNotifications(ctx, db, filter)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, due.ID, res[0].Notification.ID)
	assert.Equal(t, model.NotificationTypeHourBefore, res[0].Notification.NotificationType)
	assert.Equal(t, due.DateTimeUTC, res[0].Notification.DateTimeUTC)
	assert.Equal(t, event.ID, res[0].Event.ID)
	assert.Equal(t, "Release party", res[0].Event.Name)
	assert.Equal(t, model.EventCategoryMeeting, res[0].Event.Category)
	assert.Equal(t, user.Email, res[0].User.Email)

	_, _, err = res[0].Notification.NotificationType.CreateNotificationEmail(res[0].Notification, res[0].Event, res[0].User)
	require.NoError(t, err)

	claimed, err := repo.ClaimSentNotifications(ctx, db, []uuid.UUID{due.ID})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{due.ID}, claimed)

	claimed, err = repo.ClaimSentNotifications(ctx, db, []uuid.UUID{due.ID})
	require.NoError(t, err)
	assert.Empty(t, claimed)

	res, err = repo.GetDueNotifications(ctx, db, filter)
	require.NoError(t, err)
	assert.Empty(t, res)

	removed, err := repo.RemoveUnsentNotifications(ctx, db, event.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	left, err := repo.GetEventNotifications(ctx, db, event.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, due.ID, left[0].ID)
	assert.True(t, left[0].Sent)
}

func TestRepository_GetDueNotificationsOrderAndLimit(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()

	now := time.Date(2092, 1, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-72 * time.Hour)
	user := testhelper.CreateUser(t, db)

	var ids []uuid.UUID
	for _, offset := range []time.Duration{3 * time.Minute, -4 * time.Minute, 0} {
		event := model.NewPersonalEvent(model.EventCreate{
			UserID:      user.ID,
			Name:        "Call",
			DateTimeUTC: now.Add(time.Hour + offset),
		}, created)
		require.NoError(t, events.NewRepository().CreatePersonalEvent(ctx, db, event))

		n := model.NotificationTypeHourBefore.TryCreateNotification(&event.Event, user.ID, created)
		require.NoError(t, notification.NewRepository().CreateNotifications(ctx, db, []*model.Notification{n}))
		ids = append(ids, n.ID)
	}

	res, err := notification.NewRepository().GetDueNotifications(ctx, db, model.DueNotificationsFilter{
		From:  now.Add(-5 * time.Minute),
		To:    now.Add(5 * time.Minute),
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, ids[1], res[0].Notification.ID)
	assert.Equal(t, ids[2], res[1].Notification.ID)
}

func TestRepository_GetDueNotificationsWindowBounds(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := notification.NewRepository()

	now := time.Date(2093, 1, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-72 * time.Hour)
	user := testhelper.CreateUser(t, db)
	d := 5 * time.Minute

	event := model.NewPersonalEvent(model.EventCreate{
		UserID:      user.ID,
		Name:        "Flight",
		DateTimeUTC: now.Add(time.Hour),
	}, created)
	require.NoError(t, events.NewRepository().CreatePersonalEvent(ctx, db, event))

	// timestamps are stored with microsecond precision
	tick := time.Microsecond
	at := map[string]time.Time{
		"before from": now.Add(-d - tick),
		"from":        now.Add(-d),
		"to":          now.Add(d),
		"after to":    now.Add(d + tick),
	}

	ids := make(map[uuid.UUID]string, len(at))
	var notifications []*model.Notification
	for name, fireAt := range at {
		n := &model.Notification{
			ID:               uuid.New(),
			EventID:          event.ID,
			UserID:           user.ID,
			NotificationType: model.NotificationTypeHourBefore,
			DateTimeUTC:      fireAt,
			CreatedOnUTC:     created,
		}
		ids[n.ID] = name
		notifications = append(notifications, n)
	}
	require.NoError(t, repo.CreateNotifications(ctx, db, notifications))

	res, err := repo.GetDueNotifications(ctx, db, model.DueNotificationsFilter{From: now.Add(-d), To: now.Add(d), Limit: 10})
	require.NoError(t, err)

	var got []string
	for _, r := range res {
		got = append(got, ids[r.Notification.ID])
	}
	assert.Equal(t, []string{"from", "to"}, got)
}
