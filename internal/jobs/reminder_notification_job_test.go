package jobs_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"calendar/internal/adapters/out/postgres/reminderrepo"
	"calendar/internal/core/application/usecases/queries"
	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/reminder"
	"calendar/internal/jobs"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

func setup(t *testing.T) (*gorm.DB, *reminderrepo.GormReminderRepository) {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&reminderrepo.ReminderDTO{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db, reminderrepo.NewGormReminderRepository(db, noopTracker{})
}

func addReminder(t *testing.T, repo *reminderrepo.GormReminderRepository, title, date, at string) {
	t.Helper()
	md, err := calendar.ParseMonthDay(date)
	require.NoError(t, err)
	tm, err := clock.ParseTime(at)
	require.NoError(t, err)
	r, err := reminder.NewReminder(kernel.NewUUID(), title, md, tm)
	require.NoError(t, err)
	require.NoError(t, repo.Add(t.Context(), r))
}

func TestReminderNotificationJob_Notify(t *testing.T) {
	db, repo := setup(t)
	addReminder(t, repo, "Call grandma", "02-29", "18:30:00")
	addReminder(t, repo, "Buy cake", "02-29", "18:30:40")
	addReminder(t, repo, "Not yet", "02-29", "18:31:00")

	var logs bytes.Buffer
	job := jobs.NewReminderNotificationJob(
		queries.NewGetDueRemindersQueryHandler(db),
		"0 * * * * *",
		slog.New(slog.NewJSONHandler(&logs, nil)),
	)

	now := time.Date(2028, time.February, 29, 18, 30, 0, 0, time.UTC)
	count, err := job.Notify(t.Context(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, logs.String(), `"title":"Call grandma"`)
	assert.Contains(t, logs.String(), `"title":"Buy cake"`)
	assert.Contains(t, logs.String(), `"component":"reminder_notification_job"`)
	assert.NotContains(t, logs.String(), "Not yet")
}

func TestReminderNotificationJob_Notify_IgnoresYear(t *testing.T) {
	db, repo := setup(t)
	addReminder(t, repo, "Anniversary", "06-21", "09:00")

	job := jobs.NewReminderNotificationJob(queries.NewGetDueRemindersQueryHandler(db), "0 * * * * *", slog.New(slog.DiscardHandler))

	for _, year := range []int{1999, 2025, 2100} {
		count, err := job.Notify(t.Context(), time.Date(year, time.June, 21, 9, 0, 15, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 1, count, "year %d", year)
	}
}

func TestReminderNotificationJob_Notify_QueryFails(t *testing.T) {
	db, _ := setup(t)
	require.NoError(t, db.Migrator().DropTable(&reminderrepo.ReminderDTO{}))

	job := jobs.NewReminderNotificationJob(queries.NewGetDueRemindersQueryHandler(db), "0 * * * * *", slog.New(slog.DiscardHandler))

	_, err := job.Notify(t.Context(), time.Now())
	require.Error(t, err)
}

func TestReminderNotificationJob_StartStop(t *testing.T) {
	db, _ := setup(t)

	job := jobs.NewReminderNotificationJob(queries.NewGetDueRemindersQueryHandler(db), "0 * * * * *", slog.New(slog.DiscardHandler))
	require.NoError(t, job.Start())
	job.Stop()
}

func TestReminderNotificationJob_InvalidSchedule(t *testing.T) {
	db, _ := setup(t)

	job := jobs.NewReminderNotificationJob(queries.NewGetDueRemindersQueryHandler(db), "every minute", slog.New(slog.DiscardHandler))
	require.Error(t, job.Start())
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	db, _ := setup(t)

	jm := jobs.NewJobManager(queries.NewGetDueRemindersQueryHandler(db), "*/5 * * * * *", slog.New(slog.DiscardHandler))
	require.NoError(t, jm.StartAll())
	jm.StopAll()

	bad := jobs.NewJobManager(queries.NewGetDueRemindersQueryHandler(db), "61 * * * * *", slog.New(slog.DiscardHandler))
	require.ErrorContains(t, bad.StartAll(), "reminder notification job")
}
