package postgres_test

import (
	"testing"

	postgres_adapter "calendar/internal/adapters/out/postgres"
	"calendar/internal/adapters/out/postgres/reminderrepo"
	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/reminder"
	"calendar/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&reminderrepo.ReminderDTO{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func createTestReminder(t *testing.T) *reminder.Reminder {
	t.Helper()
	date, err := calendar.ParseMonthDay("07-04")
	require.NoError(t, err)
	at, err := clock.ParseTime("18:00")
	require.NoError(t, err)
	r, err := reminder.NewReminder(kernel.NewUUID(), "Fireworks", date, at)
	require.NoError(t, err)
	return r
}

func TestGormUnitOfWork_TransactionLifecycle(t *testing.T) {
	ctx := t.Context()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(openTestDB(t)).Create()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "a second Begin reuses the open transaction")
	require.NoError(t, uow.Commit(ctx))

	require.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Rollback(ctx))
}

func TestGormUnitOfWork_CommitPersists(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(openTestDB(t))
	r := createTestReminder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ReminderRepository().Add(ctx, r))
	require.NoError(t, uow.Commit(ctx))

	got, err := factory.Create().ReminderRepository().Get(ctx, r.ID())
	require.NoError(t, err)
	assert.True(t, got.IsEqual(r))
}

func TestGormUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(openTestDB(t))
	r := createTestReminder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ReminderRepository().Add(ctx, r))
	_, err := uow.ReminderRepository().Get(ctx, r.ID())
	require.NoError(t, err, "the transaction sees its own writes")
	require.NoError(t, uow.Rollback(ctx))

	_, err = factory.Create().ReminderRepository().Get(ctx, r.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormUnitOfWork_TracksWrittenAggregates(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(openTestDB(t))
	r := createTestReminder(t)

	uow, ok := factory.Create().(*postgres_adapter.GormUnitOfWork)
	require.True(t, ok)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ReminderRepository().Add(ctx, r))

	halfHour, err := clock.NewDuration(0, 30, 0)
	require.NoError(t, err)
	require.NoError(t, r.Postpone(halfHour))
	require.NoError(t, uow.ReminderRepository().Update(ctx, r))
	require.NoError(t, uow.Commit(ctx))

	assert.Equal(t, []kernel.UUID{r.ID(), r.ID()}, uow.TrackedIDs())
}

func TestGormUnitOfWork_WithoutTransaction(t *testing.T) {
	ctx := t.Context()
	factory := postgres_adapter.NewGormUnitOfWorkFactory(openTestDB(t))
	r := createTestReminder(t)

	require.NoError(t, factory.Create().ReminderRepository().Add(ctx, r))

	got, err := factory.Create().ReminderRepository().Get(ctx, r.ID())
	require.NoError(t, err)
	assert.Equal(t, "18:00:00", got.At().String())
}
