package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDueRemindersQueryHandler reads due reminders straight from the reminders table.
// The notification job calls it once per schedule tick.
type GetDueRemindersQueryHandler struct {
	db *gorm.DB
}

// NewGetDueRemindersQueryHandler reads through db. It never writes.
func NewGetDueRemindersQueryHandler(db *gorm.DB) GetDueRemindersQueryHandler {
	return GetDueRemindersQueryHandler{db: db}
}

// Handle returns the reminders on the query's date at its hour and minute, ordered by
// second, then ID.
func (h GetDueRemindersQueryHandler) Handle(
	ctx context.Context,
	query GetDueRemindersQuery,
) ([]ReminderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	date, at := query.Date(), query.At()
	rows, err := h.db.WithContext(ctx).Raw(selectReminders+`
		WHERE month = ? AND day = ? AND hour = ? AND minute = ?
		ORDER BY second, id
	`,
		date.Month().Value(),
		date.Day().Value(),
		at.Hour().Value(),
		at.Minute().Value(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReminders(rows)
}
