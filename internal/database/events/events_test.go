package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyKozhin/event-reminder-backend/internal/database/attendee"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/events"
	"github.com/SergeyKozhin/event-reminder-backend/internal/database/testhelper"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_PersonalEventLifecycle(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := events.NewRepository()

	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := testhelper.CreateUser(t, db)

	event := model.NewPersonalEvent(model.EventCreate{
		UserID:      owner.ID,
		Name:        "Dentist",
		Category:    model.EventCategoryOther,
		DateTimeUTC: now.Add(72 * time.Hour),
	}, now)
	require.NoError(t, repo.CreatePersonalEvent(ctx, db, event))

	got, err := repo.GetPersonalEventByID(ctx, db, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Name, got.Name)
	assert.Equal(t, event.DateTimeUTC, got.DateTimeUTC)
	assert.Equal(t, model.EventKindPersonal, got.Kind)
	assert.False(t, got.Processed)

	_, err = repo.GetGroupEventByID(ctx, db, event.ID)
	assert.ErrorIs(t, err, model.ErrNoRecord)

	claimed, err := repo.ClaimPersonalEvents(ctx, db, []uuid.UUID{event.ID}, now)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, event.ID, claimed[0].ID)
	assert.True(t, claimed[0].Processed)

	claimed, err = repo.ClaimPersonalEvents(ctx, db, []uuid.UUID{event.ID}, now)
	require.NoError(t, err)
	assert.Empty(t, claimed)

	require.NoError(t, repo.MarkPersonalEventUnprocessed(ctx, db, event.ID, now))

	unprocessed, err := repo.GetUnprocessedPersonalEvents(ctx, db, 1000)
	require.NoError(t, err)
	found := false
	for _, e := range unprocessed {
		found = found || e.ID == event.ID
	}
	assert.True(t, found)

	got.Name = "Dentist appointment"
	got.Processed = true
	got.ModifiedOnUTC = &now
	require.NoError(t, repo.UpdatePersonalEvent(ctx, db, got))

	got, err = repo.GetPersonalEventByID(ctx, db, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dentist appointment", got.Name)
	assert.True(t, got.Processed)

	missing := model.NewPersonalEvent(model.EventCreate{UserID: owner.ID}, now)
	assert.ErrorIs(t, repo.UpdatePersonalEvent(ctx, db, missing), model.ErrNoRecord)
}

func TestRepository_GetUserEvents(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := events.NewRepository()

	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := testhelper.CreateUser(t, db)
	guest := testhelper.CreateUser(t, db)

	own := model.NewPersonalEvent(model.EventCreate{UserID: guest.ID, Name: "Own", DateTimeUTC: now.Add(2 * time.Hour)}, now)
	require.NoError(t, repo.CreatePersonalEvent(ctx, db, own))

	attended := model.NewGroupEvent(model.EventCreate{UserID: owner.ID, Name: "Attended", DateTimeUTC: now.Add(time.Hour)}, now)
	require.NoError(t, repo.CreateGroupEvent(ctx, db, attended))
	require.NoError(t, attendee.NewRepository().CreateAttendee(ctx, db, model.NewAttendee(attended.ID, guest.ID, now)))

	other := model.NewGroupEvent(model.EventCreate{UserID: owner.ID, Name: "Other", DateTimeUTC: now.Add(time.Hour)}, now)
	require.NoError(t, repo.CreateGroupEvent(ctx, db, other))

	res, err := repo.GetUserEvents(ctx, db, guest.ID)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, attended.ID, res[0].ID)
	assert.Equal(t, own.ID, res[1].ID)
}

func TestRepository_ClaimPersonalEventsReturnsCurrentState(t *testing.T) {
	db := testhelper.SetupTestDB(t)
	ctx := context.Background()
	repo := events.NewRepository()

	now := time.Now().UTC().Truncate(time.Microsecond)
	owner := testhelper.CreateUser(t, db)

	rescheduled := model.NewPersonalEvent(model.EventCreate{UserID: owner.ID, Name: "Gym", DateTimeUTC: now.Add(48 * time.Hour)}, now)
	require.NoError(t, repo.CreatePersonalEvent(ctx, db, rescheduled))

	cancelled := model.NewPersonalEvent(model.EventCreate{UserID: owner.ID, Name: "Dinner", DateTimeUTC: now.Add(48 * time.Hour)}, now)
	require.NoError(t, repo.CreatePersonalEvent(ctx, db, cancelled))

	// both rows change after a producer has read them
	movedTo := now.Add(72 * time.Hour)
	rescheduled.DateTimeUTC = movedTo
	require.NoError(t, repo.UpdatePersonalEvent(ctx, db, rescheduled))
	cancelled.Cancelled = true
	require.NoError(t, repo.UpdatePersonalEvent(ctx, db, cancelled))

	claimed, err := repo.ClaimPersonalEvents(ctx, db, []uuid.UUID{rescheduled.ID, cancelled.ID}, now)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, rescheduled.ID, claimed[0].ID)
	assert.True(t, movedTo.Equal(claimed[0].DateTimeUTC))
}
