package cmd

import (
	"calendar/internal/adapters/out/postgres/reminderrepo"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects with the configured driver and migrates the schema.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	dialector := postgres.Open(cfg.DSN())
	if cfg.DBDriver == DriverSQLite {
		dialector = sqlite.Open(cfg.DBPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(&reminderrepo.ReminderDTO{}); err != nil {
		return nil, err
	}

	return db, nil
}
