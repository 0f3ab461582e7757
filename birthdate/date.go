package birthdate

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minYear = 1
	maxYear = 9999

	isoLayout = "2006-01-02"
)

// Date is a validated calendar day. The zero value is not a valid date
// and is reported by IsZero; all constructors return valid dates only.
type Date struct {
	year  int
	month int
	day   int
}

// New validates year, month and day and returns the Date.
// Complexity: O(1).
func New(year, month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return Date{}, rangeError(FieldYear, year, "year must be within %d..%d", minYear, maxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, rangeError(FieldMonth, month, "month must be within 1..12")
	}
	if last := daysIn(year, month); day < 1 || day > last {
		return Date{}, rangeError(FieldDay, day, "%04d-%02d has %d days", year, month, last)
	}

	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on error. Intended for tests and static data.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}

	return d
}

// Parse accepts "YYYY-MM-DD" or an RFC 3339 timestamp.
// Timestamps are converted to UTC before the calendar day is taken.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, formatError(s, "expected YYYY-MM-DD")
	}
	if y, m, d, ok := splitISO(s); ok {
		return New(y, m, d)
	}
	if len(s) > len(isoLayout) {
		// a day that does not exist is out of range, not malformed
		if y, m, d, ok := splitISO(s[:len(isoLayout)]); ok {
			if _, err := New(y, m, d); err != nil {
				return Date{}, err
			}
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return Date{}, formatError(s, "expected YYYY-MM-DD or an RFC 3339 timestamp")
		}

		return FromTime(t)
	}

	return Date{}, formatError(s, "expected YYYY-MM-DD")
}

// FromTime returns the UTC calendar day of t.
func FromTime(t time.Time) (Date, error) {
	u := t.UTC()

	return New(u.Year(), int(u.Month()), u.Day())
}

// splitISO parses exactly four digits, '-', two digits, '-', two digits.
// Range checks are left to New so they report the right field.
func splitISO(s string) (year, month, day int, ok bool) {
	if len(s) != len(isoLayout) || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, 0, false
		}
	}
	year, _ = strconv.Atoi(s[0:4])
	month, _ = strconv.Atoi(s[5:7])
	day, _ = strconv.Atoi(s[8:10])

	return year, month, day, true
}

// daysIn returns the number of days in month of year (proleptic Gregorian).
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the calendar month, 1..12.
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.year == 0 }

// Time returns UTC midnight of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC)
}

// String renders d as "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
