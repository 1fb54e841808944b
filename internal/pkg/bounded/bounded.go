// Package bounded holds the integer plumbing shared by the calendar and clock value
// types: inclusive range checks, strict decimal parsing, and overflow-checked
// int64 arithmetic with floor division semantics.
package bounded

import (
	"cmp"
	"strconv"
	"strings"

	"calendar/internal/pkg/errs"
)

// Check returns a ValueIsOutOfRangeError naming param when n is outside [lo, hi].
func Check[T cmp.Ordered](param string, n, lo, hi T) error {
	if n < lo || n > hi {
		return errs.NewValueIsOutOfRangeError(param, n, lo, hi)
	}
	return nil
}

// ParseInt parses a signed base-10 integer. Surrounding whitespace is ignored;
// anything else that is not a digit (after an optional sign) is a ValueIsInvalidError.
func ParseInt(param, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return n, nil
}

// ParseBounded parses s and checks it against [lo, hi].
func ParseBounded(param, s string, lo, hi int) (int, error) {
	n, err := ParseInt(param, s)
	if err != nil {
		return 0, err
	}
	if err = Check(param, n, int64(lo), int64(hi)); err != nil {
		return 0, err
	}
	return int(n), nil
}
