package calendar_test

import (
	"fmt"
	"testing"

	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scalar interface {
	Value() int
	String() string
	Validate() error
}

func TestScalars_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		build    func(int) (scalar, error)
		parse    func(string) (scalar, error)
	}{
		{
			name: "month",
			min:  calendar.MinMonth,
			max:  calendar.MaxMonth,
			build: func(n int) (scalar, error) {
				return calendar.NewMonth(n)
			},
			parse: func(s string) (scalar, error) {
				return calendar.ParseMonth(s)
			},
		},
		{
			name: "day",
			min:  calendar.MinDay,
			max:  calendar.MaxDay,
			build: func(n int) (scalar, error) {
				return calendar.NewDay(n)
			},
			parse: func(s string) (scalar, error) {
				return calendar.ParseDay(s)
			},
		},
		{
			name: "weekday",
			min:  calendar.MinWeekday,
			max:  calendar.MaxWeekday,
			build: func(n int) (scalar, error) {
				return calendar.NewWeekday(n)
			},
			parse: func(s string) (scalar, error) {
				return calendar.ParseWeekday(s)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build(tt.min - 1)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

			_, err = tt.build(tt.max + 1)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

			for n := tt.min; n <= tt.max; n++ {
				v, err := tt.build(n)
				require.NoError(t, err)
				require.NoError(t, v.Validate())
				assert.Equal(t, n, v.Value())

				parsed, err := tt.parse(v.String())
				require.NoError(t, err)
				assert.Equal(t, v, parsed, "round trip of %d", n)
			}

			_, err = tt.parse("x")
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestScalars_ZeroValue(t *testing.T) {
	assert.Equal(t, calendar.ErrMonthIsNotConstructed, calendar.Month{}.Validate())
	assert.Equal(t, calendar.ErrDayIsNotConstructed, calendar.Day{}.Validate())
	assert.Equal(t, calendar.ErrWeekdayIsNotConstructed, calendar.Weekday{}.Validate())
}

func TestScalars_Compare(t *testing.T) {
	assert.Equal(t, -1, mustMonth(t, 1).Compare(mustMonth(t, 2)))
	assert.Equal(t, 0, mustMonth(t, 5).Compare(mustMonth(t, 5)))
	assert.Equal(t, 1, mustDay(t, 31).Compare(mustDay(t, 30)))
}

func TestSystem(t *testing.T) {
	tests := []struct {
		in      string
		want    calendar.System
		wantErr bool
	}{
		{in: "julian", want: calendar.Julian},
		{in: "Gregorian", want: calendar.Gregorian},
		{in: " GREGORIAN ", want: calendar.Gregorian},
		{in: "hebrew", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := calendar.ParseSystem(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, got.Validate())
		})
	}

	require.Error(t, calendar.UnknownSystem.Validate())
	assert.Equal(t, "Julian", calendar.Julian.String())
	assert.Equal(t, "Unknown", calendar.System(9).String())
}

func TestWeekday_Names(t *testing.T) {
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, name := range want {
		w, err := calendar.NewWeekday(i + 1)
		require.NoError(t, err)
		assert.Equal(t, name, w.Name())
	}

	sunday, err := calendar.WeekdayOf(calendar.Sunday)
	require.NoError(t, err)
	assert.Equal(t, "7", sunday.String())
	assert.Equal(t, "Unknown", calendar.DayOfWeek(0).String())
}

func TestWeekday_Add(t *testing.T) {
	tests := []struct {
		start   int
		days    int64
		want    int
		wantErr error
	}{
		{start: 1, days: 0, want: 1},
		{start: 1, days: 6, want: 7},
		{start: 3, days: 2, want: 5},
		{start: 7, days: 1, wantErr: errs.ErrArithmeticOverflow},
		{start: 1, days: 9_223_372_036_854_775_807, wantErr: errs.ErrArithmeticOverflow},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d+%d", tt.start, tt.days), func(t *testing.T) {
			got, err := mustWeekday(t, tt.start).Add(mustDays(t, tt.days))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestWeekday_Subtract(t *testing.T) {
	got, err := mustWeekday(t, 7).Subtract(mustDays(t, 6))
	require.NoError(t, err)
	assert.Equal(t, calendar.Monday, got.DayOfWeek())

	_, err = mustWeekday(t, 1).Subtract(mustDays(t, 1))
	require.ErrorIs(t, err, errs.ErrArithmeticUnderflow)
}

func FuzzNewMonth(f *testing.F) {
	f.Add(1)
	f.Add(12)
	f.Add(0)
	f.Add(13)

	f.Fuzz(func(t *testing.T, n int) {
		m, err := calendar.NewMonth(n)
		if n >= calendar.MinMonth && n <= calendar.MaxMonth {
			require.NoError(t, err)
			assert.Equal(t, n, m.Value())
		} else {
			require.Error(t, err)
			assert.Zero(t, m)
		}
	})
}

func mustMonth(t testing.TB, n int) calendar.Month {
	t.Helper()
	m, err := calendar.NewMonth(n)
	require.NoError(t, err)
	return m
}

func mustDay(t testing.TB, n int) calendar.Day {
	t.Helper()
	d, err := calendar.NewDay(n)
	require.NoError(t, err)
	return d
}

func mustWeekday(t testing.TB, n int) calendar.Weekday {
	t.Helper()
	w, err := calendar.NewWeekday(n)
	require.NoError(t, err)
	return w
}

func mustDays(t testing.TB, n int64) quantity.Days {
	t.Helper()
	d, err := quantity.NewDays(n)
	require.NoError(t, err)
	return d
}

func mustMonths(t testing.TB, n int64) quantity.Months {
	t.Helper()
	m, err := quantity.NewMonths(n)
	require.NoError(t, err)
	return m
}

func mustYears(t testing.TB, n int64) quantity.Years {
	t.Helper()
	y, err := quantity.NewYears(n)
	require.NoError(t, err)
	return y
}

func mustYear(t testing.TB, system calendar.System, n int64) calendar.Year {
	t.Helper()
	y, err := calendar.NewYear(system, n)
	require.NoError(t, err)
	return y
}

func mustMonthDay(t testing.TB, m, d int) calendar.MonthDay {
	t.Helper()
	md, err := calendar.NewMonthDay(mustMonth(t, m), mustDay(t, d))
	require.NoError(t, err)
	return md
}
