package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar day. Unlike time.Time it is not normalized, so an
// impossible date such as 2-30-2024 can be represented and rejected.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the given components without normalizing them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the local calendar day of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses the "M-D-YYYY" form used on the command line and in
// ledger file names. Zero padding is accepted but not required.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, NewError(KindParse, fmt.Sprintf("invalid date %q, expected month-day-year", s), nil)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, NewError(KindParse, fmt.Sprintf("invalid date %q, expected month-day-year", s), err)
		}
		nums[i] = n
	}
	d := Date{Year: nums[2], Month: time.Month(nums[0]), Day: nums[1]}
	if !d.Valid() {
		return Date{}, NewError(KindParse, fmt.Sprintf("invalid date %q", s), nil)
	}
	return d, nil
}

// Valid reports whether d names a real calendar day in years 1 to 9999.
func (d Date) Valid() bool {
	if d.Year < 1 || d.Year > 9999 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return y == d.Year && m == d.Month && day == d.Day
}

// String renders "M-D-YYYY" with no zero padding, e.g. "9-5-2024".
func (d Date) String() string {
	return fmt.Sprintf("%d-%d-%d", int(d.Month), d.Day, d.Year)
}

// Filename is the ledger file name for d, e.g. "9-5-2024.csv".
func (d Date) Filename() string {
	return d.String() + ".csv"
}

// Time returns local midnight of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}
