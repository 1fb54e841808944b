// Package jobs provides scheduled background tasks for the reminder service.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds field, so a schedule has six
// fields.
//
// # Available Jobs
//
// ReminderNotificationJob reads the wall clock on every tick, turns it into a
// calendar.MonthDay and a clock.Time and logs the reminders due in that minute.
// The default schedule "0 * * * * *" fires once a minute.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(getDueRemindersHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing tick is logged and the next tick runs as usual. An invalid schedule
// makes StartAll fail.
package jobs
