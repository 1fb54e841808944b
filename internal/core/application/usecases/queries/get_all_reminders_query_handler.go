package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllRemindersQueryHandler reads every reminder straight from the reminders table.
type GetAllRemindersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRemindersQueryHandler reads through db. It never writes.
func NewGetAllRemindersQueryHandler(db *gorm.DB) GetAllRemindersQueryHandler {
	return GetAllRemindersQueryHandler{db: db}
}

// Handle returns the reminders ordered by date, then time of day, then ID.
func (h GetAllRemindersQueryHandler) Handle(
	ctx context.Context,
	query GetAllRemindersQuery,
) ([]ReminderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectReminders + `
		ORDER BY month, day, hour, minute, second, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReminders(rows)
}
