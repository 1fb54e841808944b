package http_test

import (
	"net/http"
	"testing"

	httpin "calendar/internal/adapters/in/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createReminder(t *testing.T, e *echo.Echo, body string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/api/v1/reminders", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode[httpin.CreatedReminder](t, rec).ID
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	return id
}

func listReminders(t *testing.T, e *echo.Echo, target string) []httpin.Reminder {
	t.Helper()
	rec := do(e, http.MethodGet, target, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[[]httpin.Reminder](t, rec)
}

func TestReminders_Lifecycle(t *testing.T) {
	e := newTestRouter(t)

	assert.Empty(t, listReminders(t, e, "/api/v1/reminders"))

	id := createReminder(t, e, `{"title":"  New year call ","date":"12-31","time":"23:30"}`)
	createReminder(t, e, `{"title":"Breakfast","date":"1-1","time":"8"}`)

	all := listReminders(t, e, "/api/v1/reminders")
	require.Len(t, all, 2)
	assert.Equal(t, "Breakfast", all[0].Title)
	assert.Equal(t, httpin.Reminder{ID: id, Title: "New year call", Date: "12-31", Time: "23:30:00"}, all[1])

	rec := do(e, http.MethodPost, "/api/v1/reminders/"+id+"/postpone", `{"duration":"PT0H45M0S"}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	due := listReminders(t, e, "/api/v1/reminders/due?date=01-01&time=00:15:59")
	require.Len(t, due, 1)
	assert.Equal(t, httpin.Reminder{ID: id, Title: "New year call", Date: "01-01", Time: "00:15:00", Postponements: 1}, due[0])

	rec = do(e, http.MethodPost, "/api/v1/reminders/"+id+"/reschedule", `{"months":1,"days":30}`)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	// 01-01 + 1 month is 02-01, and 30 days later skips the leap day.
	due = listReminders(t, e, "/api/v1/reminders/due?date=03-03&time=00:15")
	require.Len(t, due, 1)
	assert.Equal(t, id, due[0].ID)
	assert.Empty(t, listReminders(t, e, "/api/v1/reminders/due?date=01-01&time=00:15"))
}

func TestCreateReminder_Errors(t *testing.T) {
	e := newTestRouter(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"blank title", `{"title":"  ","date":"10-13","time":"09:00"}`, http.StatusBadRequest},
		{"impossible date", `{"title":"x","date":"02-30","time":"09:00"}`, http.StatusBadRequest},
		{"bad time", `{"title":"x","date":"10-13","time":"25:00"}`, http.StatusBadRequest},
		{"malformed JSON", `{"title":`, http.StatusBadRequest},
		{"wrong JSON type", `{"title":42,"date":"10-13","time":"09:00"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, "/api/v1/reminders", tt.body)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.Equal(t, tt.code, decode[httpin.Error](t, rec).Code)
		})
	}

	assert.Empty(t, listReminders(t, e, "/api/v1/reminders"))
}

func TestPostponeReminder_Errors(t *testing.T) {
	e := newTestRouter(t)
	id := createReminder(t, e, `{"title":"Standup","date":"06-01","time":"09:00"}`)

	tests := []struct {
		name   string
		target string
		body   string
		code   int
	}{
		{"unknown reminder", "/api/v1/reminders/" + uuid.NewString() + "/postpone", `{"duration":"PT1H0M0S"}`, http.StatusNotFound},
		{"malformed id", "/api/v1/reminders/not-a-uuid/postpone", `{"duration":"PT1H0M0S"}`, http.StatusBadRequest},
		{"negative duration", "/api/v1/reminders/" + id + "/postpone", `{"duration":"PT-1H0M0S"}`, http.StatusBadRequest},
		{"malformed duration", "/api/v1/reminders/" + id + "/postpone", `{"duration":"1 hour"}`, http.StatusBadRequest},
		{"overflowing duration", "/api/v1/reminders/" + id + "/postpone", `{"duration":"PT9223372036854775807H0M0S"}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, http.MethodPost, tt.target, tt.body)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}

	all := listReminders(t, e, "/api/v1/reminders")
	require.Len(t, all, 1)
	assert.Equal(t, "09:00:00", all[0].Time)
	assert.Equal(t, 0, all[0].Postponements)
}

func TestRescheduleReminder_Errors(t *testing.T) {
	e := newTestRouter(t)
	id := createReminder(t, e, `{"title":"Standup","date":"06-01","time":"09:00"}`)

	rec := do(e, http.MethodPost, "/api/v1/reminders/"+id+"/reschedule", `{"months":-1,"days":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/v1/reminders/"+uuid.NewString()+"/reschedule", `{"months":1,"days":0}`)
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
}

func TestGetDueReminders_InvalidQuery(t *testing.T) {
	e := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/reminders/due",
		"/api/v1/reminders/due?date=13-01&time=09:00",
		"/api/v1/reminders/due?date=01-01&time=noon",
	} {
		rec := do(e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
