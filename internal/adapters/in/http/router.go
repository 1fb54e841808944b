// Package http exposes the calendar arithmetic and the reminder use cases over a
// JSON API served by echo.
package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with the JSON serializer, the error mapping,
// request logging and every route registered.
//
// Returns an error if the embedded OpenAPI document served under /swagger is invalid.
func NewRouter(s *Server, logger *slog.Logger) (*echo.Echo, error) {
	if err := registerSwaggerDoc(); err != nil {
		return nil, err
	}
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = JSONSerializer{}
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))

	RegisterHandlers(e, s)
	return e, nil
}

// RegisterHandlers wires the routes onto e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.GetHealth)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	v1.GET("/calendars/:system/years/:year", s.GetYear)
	v1.GET("/calendars/:system/years/:year/months/:month", s.GetMonthLength)
	v1.GET("/calendars/:system/years/:year/easter", s.GetEaster)

	v1.GET("/month-days/:date/shift", s.ShiftMonthDay)
	v1.GET("/times/:time/shift", s.ShiftTime)

	v1.POST("/reminders", s.CreateReminder)
	v1.GET("/reminders", s.GetReminders)
	v1.GET("/reminders/due", s.GetDueReminders)
	v1.POST("/reminders/:id/postpone", s.PostponeReminder)
	v1.POST("/reminders/:id/reschedule", s.RescheduleReminder)
}
