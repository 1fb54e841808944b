package http

import (
	"calendar/internal/core/application/usecases/queries"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health is the body of GET /health.
type Health struct {
	Status string `json:"status"`
}

// Year describes one year of a calendar system.
type Year struct {
	System string `json:"system"`
	Year   int64  `json:"year"`
	Leap   bool   `json:"leap"`
	Days   int    `json:"days"`
	Weeks  int    `json:"weeks"`
}

// MonthLength is the number of days in one month of a year.
type MonthLength struct {
	Days int `json:"days"`
}

// MonthDay carries a date in "MM-DD" form.
type MonthDay struct {
	Date string `json:"date"`
}

// TimeOfDay carries a time in "HH:MM:SS" form.
type TimeOfDay struct {
	Time string `json:"time"`
}

// NewReminder is the request body for creating a reminder. Date is "MM-DD" and
// Time is "HH[:MM[:SS]]".
type NewReminder struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// CreatedReminder returns the identifier assigned to a new reminder.
type CreatedReminder struct {
	ID string `json:"id"`
}

// Postponement is the request body for postponing a reminder. Duration is
// "PT{h}H{m}M{s}S".
type Postponement struct {
	Duration string `json:"duration"`
}

// Rescheduling is the request body for moving a reminder by months, then days.
type Rescheduling struct {
	Months int64 `json:"months"`
	Days   int64 `json:"days"`
}

// Reminder is one stored reminder as listed by the API.
type Reminder struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Postponements int    `json:"postponements"`
}

func remindersFrom(rs []queries.ReminderResponse) []Reminder {
	response := make([]Reminder, len(rs))
	for i, r := range rs {
		response[i] = Reminder{
			ID:            r.ID.String(),
			Title:         r.Title,
			Date:          r.Date.String(),
			Time:          r.At.String(),
			Postponements: r.Postponements,
		}
	}
	return response
}
