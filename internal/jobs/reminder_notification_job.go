package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"calendar/internal/core/application/usecases/queries"
	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"

	"github.com/robfig/cron/v3"
)

// ReminderNotificationJob announces due reminders on a cron schedule.
type ReminderNotificationJob struct {
	handler  queries.GetDueRemindersQueryHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReminderNotificationJob creates the job. schedule is a six-field cron expression
// with seconds first.
func NewReminderNotificationJob(
	handler queries.GetDueRemindersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *ReminderNotificationJob {
	return &ReminderNotificationJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "reminder_notification_job"),
	}
}

// Start registers the job with the scheduler and starts it. It fails on an invalid
// schedule.
func (j *ReminderNotificationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Notify(ctx, j.now()); err != nil {
			j.logger.ErrorContext(ctx, "Reminder notification job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reminder notification job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running tick to finish.
func (j *ReminderNotificationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Reminder notification job stopped")
}

// Notify logs every reminder due at the wall clock reading now and returns how many
// there were. The year of now is irrelevant because reminders recur annually.
func (j *ReminderNotificationJob) Notify(ctx context.Context, now time.Time) (int, error) {
	date, dateErr := calendar.MonthDayOf(int(now.Month()), now.Day())
	at, atErr := clock.TimeOf(now.Hour(), now.Minute(), now.Second())
	if err := errors.Join(dateErr, atErr); err != nil {
		return 0, err
	}

	query, err := queries.NewGetDueRemindersQuery(date, at)
	if err != nil {
		return 0, err
	}

	due, err := j.handler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	for _, r := range due {
		j.logger.InfoContext(ctx, "Reminder is due",
			"id", r.ID.String(),
			"title", r.Title,
			"date", r.Date.String(),
			"time", r.At.String(),
			"postponements", r.Postponements,
		)
	}

	return len(due), nil
}
