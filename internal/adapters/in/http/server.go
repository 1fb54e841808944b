package http

import (
	"fmt"
	"net/http"
	"strings"

	"calendar/internal/core/application/usecases/commands"
	"calendar/internal/core/application/usecases/queries"
	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/clock"
	"calendar/internal/core/domain/model/kernel"
	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the use case handlers behind the HTTP routes. Calendar arithmetic
// routes need no handler and work on the domain values directly.
type Server struct {
	// Command handlers
	createReminderHandler     commands.CreateReminderCommandHandler
	postponeReminderHandler   commands.PostponeReminderCommandHandler
	rescheduleReminderHandler commands.RescheduleReminderCommandHandler

	// Query handlers
	getAllRemindersHandler queries.GetAllRemindersQueryHandler
	getDueRemindersHandler queries.GetDueRemindersQueryHandler
}

// NewServer wires the use case handlers behind the HTTP routes.
func NewServer(
	createReminderHandler commands.CreateReminderCommandHandler,
	postponeReminderHandler commands.PostponeReminderCommandHandler,
	rescheduleReminderHandler commands.RescheduleReminderCommandHandler,
	getAllRemindersHandler queries.GetAllRemindersQueryHandler,
	getDueRemindersHandler queries.GetDueRemindersQueryHandler,
) *Server {
	return &Server{
		createReminderHandler:     createReminderHandler,
		postponeReminderHandler:   postponeReminderHandler,
		rescheduleReminderHandler: rescheduleReminderHandler,
		getAllRemindersHandler:    getAllRemindersHandler,
		getDueRemindersHandler:    getDueRemindersHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Status: "ok"})
}

// GetYear handles GET /api/v1/calendars/:system/years/:year.
func (s *Server) GetYear(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, Year{
		System: strings.ToLower(year.System().String()),
		Year:   year.Magnitude(),
		Leap:   year.IsLeapYear(),
		Days:   year.DaysWithin(),
		Weeks:  year.WeeksWithin(),
	})
}

// GetMonthLength handles GET /api/v1/calendars/:system/years/:year/months/:month.
func (s *Server) GetMonthLength(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}
	var n int
	if err = bindPathParam(ctx, "month", &n); err != nil {
		return err
	}
	month, err := calendar.NewMonth(n)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, MonthLength{Days: year.DaysInMonth(month)})
}

// GetEaster handles GET /api/v1/calendars/:system/years/:year/easter. Only the
// Julian computus is implemented.
func (s *Server) GetEaster(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}
	if year.System() != calendar.Julian {
		return errs.NewValueIsInvalidErrorWithCause("calendar system",
			fmt.Errorf("easter is computed for the julian calendar only, got %s", year.System()))
	}

	easter, err := calendar.NewJulianCalendar().EasterInYear(year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, MonthDay{Date: easter.String()})
}

// ShiftMonthDay handles GET /api/v1/month-days/:date/shift?months=&days=&direction=.
// Months are applied before days in both directions.
func (s *Server) ShiftMonthDay(ctx echo.Context) error {
	date, err := calendar.ParseMonthDay(ctx.Param("date"))
	if err != nil {
		return err
	}
	months, err := quantity.ParseMonths(queryOrZero(ctx, "months"))
	if err != nil {
		return err
	}
	days, err := quantity.ParseDays(queryOrZero(ctx, "days"))
	if err != nil {
		return err
	}
	backward, err := isBackward(ctx)
	if err != nil {
		return err
	}

	if backward {
		date = date.SubtractMonths(months).SubtractDays(days)
	} else {
		date = date.AddMonths(months).AddDays(days)
	}

	return ctx.JSON(http.StatusOK, MonthDay{Date: date.String()})
}

// ShiftTime handles GET /api/v1/times/:time/shift?duration=&direction=.
func (s *Server) ShiftTime(ctx echo.Context) error {
	at, err := clock.ParseTime(ctx.Param("time"))
	if err != nil {
		return err
	}
	d, err := clock.ParseDuration(ctx.QueryParam("duration"))
	if err != nil {
		return err
	}
	backward, err := isBackward(ctx)
	if err != nil {
		return err
	}

	if backward {
		at = at.SubtractDuration(d)
	} else {
		at = at.AddDuration(d)
	}

	return ctx.JSON(http.StatusOK, TimeOfDay{Time: at.String()})
}

// CreateReminder handles POST /api/v1/reminders.
func (s *Server) CreateReminder(ctx echo.Context) error {
	var body NewReminder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	date, err := calendar.ParseMonthDay(body.Date)
	if err != nil {
		return err
	}
	at, err := clock.ParseTime(body.Time)
	if err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateReminderCommand(id, body.Title, date, at)
	if err != nil {
		return err
	}

	if err = s.createReminderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, CreatedReminder{ID: id.String()})
}

// GetReminders handles GET /api/v1/reminders.
func (s *Server) GetReminders(ctx echo.Context) error {
	reminders, err := s.getAllRemindersHandler.Handle(ctx.Request().Context(), queries.NewGetAllRemindersQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, remindersFrom(reminders))
}

// GetDueReminders handles GET /api/v1/reminders/due?date=&time=.
func (s *Server) GetDueReminders(ctx echo.Context) error {
	date, err := calendar.ParseMonthDay(ctx.QueryParam("date"))
	if err != nil {
		return err
	}
	at, err := clock.ParseTime(ctx.QueryParam("time"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetDueRemindersQuery(date, at)
	if err != nil {
		return err
	}

	reminders, err := s.getDueRemindersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, remindersFrom(reminders))
}

// PostponeReminder handles POST /api/v1/reminders/:id/postpone.
func (s *Server) PostponeReminder(ctx echo.Context) error {
	var id kernel.UUID
	if err := bindPathParam(ctx, "id", &id); err != nil {
		return err
	}

	var body Postponement
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	d, err := clock.ParseDuration(body.Duration)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPostponeReminderCommand(id, d)
	if err != nil {
		return err
	}

	if err = s.postponeReminderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RescheduleReminder handles POST /api/v1/reminders/:id/reschedule.
func (s *Server) RescheduleReminder(ctx echo.Context) error {
	var id kernel.UUID
	if err := bindPathParam(ctx, "id", &id); err != nil {
		return err
	}

	var body Rescheduling
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	months, err := quantity.NewMonths(body.Months)
	if err != nil {
		return err
	}
	days, err := quantity.NewDays(body.Days)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRescheduleReminderCommand(id, months, days)
	if err != nil {
		return err
	}

	if err = s.rescheduleReminderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// yearParam reads the :system and :year path parameters.
func yearParam(ctx echo.Context) (calendar.Year, error) {
	var (
		name      string
		magnitude int64
	)
	if err := bindPathParam(ctx, "system", &name); err != nil {
		return calendar.Year{}, err
	}
	if err := bindPathParam(ctx, "year", &magnitude); err != nil {
		return calendar.Year{}, err
	}

	system, err := calendar.ParseSystem(name)
	if err != nil {
		return calendar.Year{}, err
	}
	return calendar.NewYear(system, magnitude)
}

func queryOrZero(ctx echo.Context, name string) string {
	if v := ctx.QueryParam(name); v != "" {
		return v
	}
	return "0"
}

func isBackward(ctx echo.Context) (bool, error) {
	switch direction := ctx.QueryParam("direction"); direction {
	case "", "forward":
		return false, nil
	case "backward":
		return true, nil
	default:
		return false, errs.NewValueIsInvalidErrorWithCause("direction",
			fmt.Errorf("%q is not one of forward, backward", direction))
	}
}
