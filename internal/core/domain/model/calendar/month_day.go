package calendar

import (
	"errors"
	"fmt"
	"strings"

	"calendar/internal/core/domain/model/quantity"
	"calendar/internal/pkg/bounded"
	"calendar/internal/pkg/errs"
	"calendar/internal/pkg/guard"
)

// ErrMonthDayIsNotConstructed is returned when using a zero MonthDay.
var ErrMonthDayIsNotConstructed = errs.NewValueIsRequiredError(
	"month-day must be created via NewMonthDay or ParseMonthDay")

// daysPerCommonYear is the length of one cycle of MonthDay.AddDays.
const daysPerCommonYear = 365

// MonthDay is a day of the year without a year, such as 10-13.
//
// Because no year is known, month lengths come from the common-year table, except
// that February 29 is always accepted at construction. Month arithmetic clamps the
// day to the destination month (so 03-31 plus one month is 04-30, and any move into
// February clamps to 28); day arithmetic carries across month ends and wraps
// December to January.
//
// Example:
//
//	md, err := calendar.ParseMonthDay("10-13")
//	if err != nil {
//	    // handle error
//	}
//	three, _ := quantity.NewMonths(3)
//	fmt.Println(md.AddMonths(three)) // Output: 01-13
type MonthDay struct { //nolint:recvcheck //using for validation
	month Month
	day   Day
	guard guard.ConstructorGuard
}

// NewMonthDay combines month and day, rejecting days past the end of the month.
// February accepts 29 but not 30.
func NewMonthDay(month Month, day Day) (MonthDay, error) {
	md := MonthDay{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(month.Validate(), day.Validate()); err != nil {
		return MonthDay{}, err
	}
	if err := md.set(month, day); err != nil {
		return MonthDay{}, err
	}

	return md, nil
}

// MonthDayOf builds a MonthDay from plain integers.
func MonthDayOf(month, day int) (MonthDay, error) {
	m, mErr := NewMonth(month)
	d, dErr := NewDay(day)
	if err := errors.Join(mErr, dErr); err != nil {
		return MonthDay{}, err
	}
	return NewMonthDay(m, d)
}

// ParseMonthDay parses the "MM-DD" form. Single-digit fields ("3-1") are accepted.
func ParseMonthDay(s string) (MonthDay, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return MonthDay{}, errs.NewValueIsInvalidErrorWithCause(
			"month-day", fmt.Errorf("%q is not in MM-DD form", s))
	}

	month, monthErr := ParseMonth(parts[0])
	day, dayErr := ParseDay(parts[1])
	if err := errors.Join(monthErr, dayErr); err != nil {
		return MonthDay{}, err
	}

	return NewMonthDay(month, day)
}

// Validate returns ErrMonthDayIsNotConstructed for a MonthDay not built by a constructor.
func (md MonthDay) Validate() error {
	return md.guard.Validate(ErrMonthDayIsNotConstructed)
}

// Month returns the month component.
func (md MonthDay) Month() Month {
	return md.month
}

// Day returns the day component.
func (md MonthDay) Day() Day {
	return md.day
}

// String returns the zero-padded "MM-DD" form.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", md.month.value, md.day.value)
}

// Compare orders by month, then by day.
func (md MonthDay) Compare(other MonthDay) int {
	if c := md.month.Compare(other.month); c != 0 {
		return c
	}
	return md.day.Compare(other.day)
}

// MarshalText encodes md in the "MM-DD" form. A zero MonthDay fails.
func (md MonthDay) MarshalText() ([]byte, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	return []byte(md.String()), nil
}

// UnmarshalText accepts anything ParseMonthDay does.
func (md *MonthDay) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthDay(string(text))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

// AddMonths moves forward by months, wrapping December to January and clamping
// the day to the length of the destination month.
func (md MonthDay) AddMonths(months quantity.Months) MonthDay {
	steps := months.Value() % MaxMonth
	return md.atMonth(int((int64(md.month.value-1)+steps)%MaxMonth) + 1)
}

// SubtractMonths moves back by months with the same wrapping and clamping.
func (md MonthDay) SubtractMonths(months quantity.Months) MonthDay {
	steps := months.Value() % MaxMonth
	return md.atMonth(int(bounded.FloorMod(int64(md.month.value-1)-steps, MaxMonth)) + 1)
}

// IncrementMonth moves one month forward, clamping the day.
func (md MonthDay) IncrementMonth() MonthDay {
	return md.atMonth(md.month.value%MaxMonth + 1)
}

// DecrementMonth moves one month back, clamping the day.
func (md MonthDay) DecrementMonth() MonthDay {
	return md.atMonth((md.month.value+MaxMonth-2)%MaxMonth + 1)
}

// AddDays moves forward by days, carrying into following months. The walk uses
// common-year month lengths and repeats every 365 days; February 29 counts as the
// last day of February.
func (md MonthDay) AddDays(days quantity.Days) MonthDay {
	m, d := md.month.value, md.day.value
	remaining := int(days.Value() % daysPerCommonYear)

	for remaining > 0 {
		left := max(nonLeapDaysIn(m), d) - d
		if remaining <= left {
			d += remaining
			break
		}
		remaining -= left + 1
		m = m%MaxMonth + 1
		d = 1
	}

	return monthDayOf(m, d)
}

// SubtractDays moves back by days, borrowing from preceding months.
func (md MonthDay) SubtractDays(days quantity.Days) MonthDay {
	m, d := md.month.value, md.day.value
	remaining := int(days.Value() % daysPerCommonYear)

	for remaining > 0 {
		if remaining < d {
			d -= remaining
			break
		}
		remaining -= d
		m = (m+MaxMonth-2)%MaxMonth + 1
		d = nonLeapDaysIn(m)
	}

	return monthDayOf(m, d)
}

// IncrementDay returns the following day; 12-31 wraps to 01-01.
func (md MonthDay) IncrementDay() MonthDay {
	return md.AddDays(oneDay)
}

// DecrementDay returns the preceding day; 01-01 wraps to 12-31.
func (md MonthDay) DecrementDay() MonthDay {
	return md.SubtractDays(oneDay)
}

var oneDay, _ = quantity.NewDays(1)

// atMonth keeps the day, clamped to the common-year length of month m.
func (md MonthDay) atMonth(m int) MonthDay {
	return monthDayOf(m, min(md.day.value, nonLeapDaysIn(m)))
}

func monthDayOf(m, d int) MonthDay {
	return MonthDay{month: monthOf(m), day: dayOf(d), guard: guard.NewConstructorGuard()}
}

func (md *MonthDay) set(month Month, day Day) error {
	limit := nonLeapDaysIn(month.value)
	if month.value == february {
		limit = leapDay
	}
	if day.value > limit {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"day", day.value, MinDay, limit,
			fmt.Errorf("month %d has at most %d days", month.value, limit),
		)
	}

	md.month = month
	md.day = day
	return nil
}
