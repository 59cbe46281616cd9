package qif

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the canonical textual representation of a Date.
const DateFormat = "2006-01-02"

// Date represents a day-granularity date as found in QIF files.
// QIF dates carry no time of day and no time zone.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a date from its components, normalized the way time.Date
// normalizes (month 13 rolls over).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{y: t.Year(), m: t.Month(), d: t.Day()}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC)
}

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string { return d.Time().Format(DateFormat) }

// Format formats the date with a time.Format layout.
func (d Date) Format(layout string) string { return d.Time().Format(layout) }

// zeroSeparatedDate matches dates that use '0' as the separator, a quirk
// some exporters produce, e.g. "0100202022" for 10/20/2022.
var zeroSeparatedDate = regexp.MustCompile(`^(\d{2}|\d{4}|[a-zA-Z]+)0(\d{2}|[a-zA-Z]+)0(\d{2}|\d{4})$`)

var dateSeparators = regexp.MustCompile(`[/\-.]`)

// ParseDate parses a QIF date field.
//
// Quicken writes dates in many regional shapes: "02/07/2021", "2021-02-07",
// "7 Feb 2021" with '/', '-', '.' or space separators, sometimes using a
// space for a leading zero ("1/ 5/21") or an apostrophe before a two-digit
// year ("1/5'21"). dayFirst selects how an ambiguous "02/07/2021" is read:
// 7 February when true, February 7 when false.
func ParseDate(s string, dayFirst bool) (Date, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "0")
	s = strings.ReplaceAll(s, "'", "/")

	var parts []string
	if m := zeroSeparatedDate.FindStringSubmatch(s); m != nil {
		parts = m[1:]
	} else {
		parts = dateSeparators.Split(s, -1)
	}
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: expected 3 components, got %d", raw, len(parts))
	}

	var yearPart, first, second string
	switch {
	case len(parts[0]) == 4 && isDigits(parts[0]):
		// ISO order: year first, then month, day.
		yearPart, first, second = parts[0], parts[1], parts[2]
		dayFirst = false
	default:
		yearPart, first, second = parts[2], parts[0], parts[1]
	}
	if dayFirst {
		first, second = second, first
	}
	// here first is the month-ish part, second the day-ish part.

	year, err := parseYear(yearPart)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}

	var month time.Month
	var day int
	if m, ok := parseMonth(first); ok {
		month = m
		day, err = strconv.Atoi(second)
	} else if m, ok := parseMonth(second); ok {
		// month spelled out in the other position.
		month = m
		day, err = strconv.Atoi(first)
	} else {
		var mn int
		mn, err = strconv.Atoi(first)
		if err == nil {
			day, err = strconv.Atoi(second)
		}
		if err == nil && mn > 12 && day <= 12 {
			// the declared order is impossible, the other one is not.
			mn, day = day, mn
		}
		month = time.Month(mn)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("invalid date %q: no such day", raw)
	}
	return Date{y: year, m: month, d: day}, nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(s string, dayFirst bool) Date {
	d, err := ParseDate(s, dayFirst)
	if err != nil {
		panic(err.Error())
	}
	return d
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// parseYear accepts 2 or 4 digit years. Two-digit years pivot at 69:
// 69 means 1969, 68 means 2068.
func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad year %q", s)
	}
	if len(s) <= 2 {
		if y >= 69 {
			y += 1900
		} else {
			y += 2000
		}
	}
	return y, nil
}

func parseMonth(s string) (time.Month, bool) {
	if isDigits(s) {
		return 0, false
	}
	name := strings.ToLower(s)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m, true
		}
	}
	return 0, false
}

// MarshalJSON writes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON reads a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return err
	}
	*d = Date{y: t.Year(), m: t.Month(), d: t.Day()}
	return nil
}
