package jobs

import (
	"fmt"
	"log/slog"

	"calendar/internal/core/application/usecases/queries"
)

// JobManager starts and stops the scheduled jobs of the application.
type JobManager struct {
	reminderNotificationJob *ReminderNotificationJob
}

// NewJobManager builds the reminder notification job for reminderSchedule, a cron
// expression with a leading seconds field.
func NewJobManager(
	getDueRemindersHandler queries.GetDueRemindersQueryHandler,
	reminderSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reminderNotificationJob: NewReminderNotificationJob(getDueRemindersHandler, reminderSchedule, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reminderNotificationJob.Start(); err != nil {
		return fmt.Errorf("failed to start reminder notification job: %w", err)
	}

	return nil
}

// StopAll stops every job and waits for running ticks to finish.
func (jm *JobManager) StopAll() {
	jm.reminderNotificationJob.Stop()
}
