package calendar_test

import (
	"fmt"
	"testing"

	"calendar/internal/core/domain/model/calendar"
	"calendar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestJulianCalendar_IsLeapYear(t *testing.T) {
	tests := []struct {
		year int64
		want bool
	}{
		{year: 4, want: true},
		{year: 5, want: false},
		{year: 1900, want: true},
		{year: 2000, want: true},
		{year: 2023, want: false},
		{year: -1, want: true},
		{year: -5, want: true},
		{year: -2, want: false},
		{year: -4, want: false},
	}

	cal := calendar.NewJulianCalendar()
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.year), func(t *testing.T) {
			assert.Equal(t, tt.want, cal.IsLeapYear(mustYear(t, calendar.Julian, tt.year)))
		})
	}
}

func TestGregorianCalendar_IsLeapYear(t *testing.T) {
	tests := []struct {
		year int64
		want bool
	}{
		{year: 1500, want: true},
		{year: 1581, want: false},
		{year: 1582, want: false},
		{year: 1600, want: true},
		{year: 1700, want: false},
		{year: 1900, want: false},
		{year: 2000, want: true},
		{year: 2024, want: true},
		{year: 2100, want: false},
		{year: -1, want: true},
	}

	cal := calendar.NewGregorianCalendar()
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.year), func(t *testing.T) {
			assert.Equal(t, tt.want, cal.IsLeapYear(mustYear(t, calendar.Gregorian, tt.year)))
		})
	}
}

func TestCalendar_DaysInMonth(t *testing.T) {
	julian := calendar.NewJulianCalendar()
	gregorian := calendar.NewGregorianCalendar()

	assert.Equal(t, 29, julian.DaysInMonth(mustYear(t, calendar.Julian, 1900), mustMonth(t, 2)))
	assert.Equal(t, 28, gregorian.DaysInMonth(mustYear(t, calendar.Gregorian, 1900), mustMonth(t, 2)))
	assert.Equal(t, 29, gregorian.DaysInMonth(mustYear(t, calendar.Gregorian, 2000), mustMonth(t, 2)))
	assert.Equal(t, 31, gregorian.DaysInMonth(mustYear(t, calendar.Gregorian, 2000), mustMonth(t, 1)))
	assert.Equal(t, 30, julian.DaysInMonth(mustYear(t, calendar.Julian, 2000), mustMonth(t, 11)))

	assert.Equal(t, 366, julian.DaysInYear(mustYear(t, calendar.Julian, 4)))
	assert.Equal(t, 365, julian.DaysInYear(mustYear(t, calendar.Julian, 5)))
	assert.Equal(t, 365, gregorian.DaysInYear(mustYear(t, calendar.Gregorian, 1900)))
	assert.Equal(t, 366, gregorian.DaysInYear(mustYear(t, calendar.Gregorian, 2000)))
}

func TestForSystem(t *testing.T) {
	cal, err := calendar.ForSystem(calendar.Julian)
	require.NoError(t, err)
	assert.Equal(t, calendar.Julian, cal.System())

	cal, err = calendar.ForSystem(calendar.Gregorian)
	require.NoError(t, err)
	assert.Equal(t, calendar.Gregorian, cal.System())

	_, err = calendar.ForSystem(calendar.UnknownSystem)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestJulianCalendar_EasterInYear(t *testing.T) {
	tests := []struct {
		year int64
		want string
	}{
		{year: 2008, want: "04-14"},
		{year: 2024, want: "04-22"},
		{year: 2025, want: "04-07"},
	}

	cal := calendar.NewJulianCalendar()
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.year), func(t *testing.T) {
			got, err := cal.EasterInYear(mustYear(t, calendar.Julian, tt.year))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("year not constructed", func(t *testing.T) {
		_, err := cal.EasterInYear(calendar.Year{})
		require.ErrorIs(t, err, calendar.ErrYearIsNotConstructed)
	})
}

func TestJulianCalendar_EasterInYear_Window(t *testing.T) {
	earliest := mustMonthDay(t, 3, 22)
	latest := mustMonthDay(t, 4, 25)
	cal := calendar.NewJulianCalendar()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(-1_000_000, 1_000_000).Filter(func(n int64) bool { return n != 0 }).Draw(t, "year")
		year, err := calendar.NewYear(calendar.Julian, n)
		require.NoError(t, err)

		easter, err := cal.EasterInYear(year)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, easter.Compare(earliest), 0, "easter %s of %d", easter, n)
		assert.LessOrEqual(t, easter.Compare(latest), 0, "easter %s of %d", easter, n)
	})
}
