package cmd

import (
	"log/slog"

	httpin "calendar/internal/adapters/in/http"
	"calendar/internal/adapters/out/postgres"
	"calendar/internal/core/application/usecases/commands"
	"calendar/internal/core/application/usecases/queries"
	"calendar/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds the handlers, server and jobs from one Config and database.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot keeps config, gormDB and logger for the factories below.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) reminderUoWFactory() commands.ReminderUoWFactory {
	return FuncReminderUoWFactory(func() commands.ReminderUoW {
		return c.uowFactory.Create()
	})
}

// CreateCreateReminderCommandHandler opens a new unit of work for every command.
func (c *CompositionRoot) CreateCreateReminderCommandHandler() commands.CreateReminderCommandHandler {
	return commands.NewCreateReminderCommandHandler(c.reminderUoWFactory())
}

// CreatePostponeReminderCommandHandler opens a new unit of work for every command.
func (c *CompositionRoot) CreatePostponeReminderCommandHandler() commands.PostponeReminderCommandHandler {
	return commands.NewPostponeReminderCommandHandler(c.reminderUoWFactory())
}

// CreateRescheduleReminderCommandHandler opens a new unit of work for every command.
func (c *CompositionRoot) CreateRescheduleReminderCommandHandler() commands.RescheduleReminderCommandHandler {
	return commands.NewRescheduleReminderCommandHandler(c.reminderUoWFactory())
}

// CreateGetAllRemindersQueryHandler reads the shared database directly.
func (c *CompositionRoot) CreateGetAllRemindersQueryHandler() queries.GetAllRemindersQueryHandler {
	return queries.NewGetAllRemindersQueryHandler(c.gormDB)
}

// CreateGetDueRemindersQueryHandler reads the shared database directly.
func (c *CompositionRoot) CreateGetDueRemindersQueryHandler() queries.GetDueRemindersQueryHandler {
	return queries.NewGetDueRemindersQueryHandler(c.gormDB)
}

// CreateServer builds the HTTP server with every use case handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateReminderCommandHandler(),
		c.CreatePostponeReminderCommandHandler(),
		c.CreateRescheduleReminderCommandHandler(),
		c.CreateGetAllRemindersQueryHandler(),
		c.CreateGetDueRemindersQueryHandler(),
	)
}

// CreateJobManager builds the job manager on the configured reminder schedule.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDueRemindersQueryHandler(),
		c.config.ReminderSchedule,
		c.logger,
	)
}

// FuncReminderUoWFactory adapts a function to commands.ReminderUoWFactory.
type FuncReminderUoWFactory func() commands.ReminderUoW

// Create calls f.
func (f FuncReminderUoWFactory) Create() commands.ReminderUoW {
	return f()
}
