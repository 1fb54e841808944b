package calendar

import (
	"calendar/internal/pkg/bounded"
)

// Calendar answers year- and month-length questions for one calendar system.
// Implementations are stateless.
type Calendar interface {
	System() System
	IsLeapYear(year Year) bool
	DaysInMonth(year Year, month Month) int
	DaysInYear(year Year) int
}

// ForSystem returns the Calendar implementing s.
func ForSystem(s System) (Calendar, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s == Julian {
		return JulianCalendar{}, nil
	}
	return GregorianCalendar{}, nil
}

// nonLeapDays holds month lengths in a common year, indexed by month-1.
var nonLeapDays = [MaxMonth]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

const (
	february = 2
	// leapDay is the largest day February accepts in a year-agnostic MonthDay.
	leapDay = 29
)

// nonLeapDaysIn is the length of month m (1-based) in a common year.
func nonLeapDaysIn(m int) int {
	return nonLeapDays[m-1]
}

func daysInMonth(cal Calendar, year Year, month Month) int {
	days := nonLeapDaysIn(month.value)
	if month.value == february && cal.IsLeapYear(year) {
		days++
	}
	return days
}

func daysInYear(cal Calendar, year Year) int {
	total := 0
	for m := MinMonth; m <= MaxMonth; m++ {
		total += cal.DaysInMonth(year, monthOf(m))
	}
	return total
}

// JulianCalendar implements the proleptic Julian calendar.
type JulianCalendar struct{}

// NewJulianCalendar returns the stateless Julian calendar.
func NewJulianCalendar() JulianCalendar {
	return JulianCalendar{}
}

// System returns Julian.
func (JulianCalendar) System() System {
	return Julian
}

// IsLeapYear applies the Julian rule to the year's magnitude: positive years are
// leap when divisible by 4; for magnitudes at or below zero a year is leap when its
// negation leaves remainder 1 modulo 4, so 1 BC (-1) and 5 BC (-5) are leap years.
func (JulianCalendar) IsLeapYear(year Year) bool {
	m := year.magnitude
	if m <= 0 {
		return bounded.FloorMod(-m, 4) == 1
	}
	return m%4 == 0
}

// DaysInMonth returns the length of month in year, 29 for a leap February.
func (c JulianCalendar) DaysInMonth(year Year, month Month) int {
	return daysInMonth(c, year, month)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func (c JulianCalendar) DaysInYear(year Year) int {
	return daysInYear(c, year)
}

// EasterInYear returns the Julian Easter Sunday of year as a MonthDay:
//
//	a = (19·(y mod 19) + 15) mod 30
//	b = (2·(y mod 4) + 4·(y mod 7) − a + 34) mod 7
//	c = a + b + 114
//	month = c / 31, day = c mod 31 + 1
//
// y is the year's magnitude; mod is floor modulo, so the rule extends to negative
// years. The result always falls between 22 March and 25 April.
func (JulianCalendar) EasterInYear(year Year) (MonthDay, error) {
	if err := year.Validate(); err != nil {
		return MonthDay{}, err
	}

	y := year.magnitude
	a := (19*bounded.FloorMod(y, 19) + 15) % 30
	b := (2*bounded.FloorMod(y, 4) + 4*bounded.FloorMod(y, 7) - a + 34) % 7
	c := a + b + 114

	return NewMonthDay(monthOf(int(c/31)), dayOf(int(c%31+1)))
}

// gregorianReformYear is the first year the Gregorian leap rule applies.
const gregorianReformYear = 1582

// gregorianReformGap is the number of calendar days dropped in the reform year.
const gregorianReformGap = 10

// GregorianCalendar implements the Gregorian calendar, falling back to the Julian
// rule for years before 1582. The reform date is the same for every country.
type GregorianCalendar struct{}

// NewGregorianCalendar returns the stateless Gregorian calendar.
func NewGregorianCalendar() GregorianCalendar {
	return GregorianCalendar{}
}

// System returns Gregorian.
func (GregorianCalendar) System() System {
	return Gregorian
}

// IsLeapYear applies the 4/100/400 rule from 1582 on and the Julian rule before.
func (GregorianCalendar) IsLeapYear(year Year) bool {
	m := year.magnitude
	if m < gregorianReformYear {
		return JulianCalendar{}.IsLeapYear(year)
	}
	return m%4 == 0 && (m%100 != 0 || m%400 == 0)
}

// DaysInMonth returns the length of month in year, 29 for a leap February.
func (c GregorianCalendar) DaysInMonth(year Year, month Month) int {
	return daysInMonth(c, year, month)
}

// DaysInYear sums the month lengths. It does not remove the reform gap; see
// Year.DaysWithin for that.
func (c GregorianCalendar) DaysInYear(year Year) int {
	return daysInYear(c, year)
}
