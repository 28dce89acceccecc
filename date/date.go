// Package date provides a calendar date type with day granularity, the
// lenient parsing used at the JSON boundary, and the chart window arithmetic.
package date

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Label formats used for display.
const (
	ShortLabelFormat = "Jan 2"
	FullLabelFormat  = "January 2, 2006"
)

// ErrUnparseable is returned when a value cannot be turned into a Date.
var ErrUnparseable = errors.New("unparseable date")

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
//
// Out of range values roll over like time.Date does: New(2024, 2, 31) is 2024-03-02.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date in the local time zone.
func Today() Date { return New(time.Now().Date()) }

// Of returns the calendar date of t, in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Label returns the short display label, e.g. "Mar 31".
func (d Date) Label() string { return d.Format(ShortLabelFormat) }

// FullLabel returns the long display label, e.g. "March 31, 2024".
func (d Date) FullLabel() string { return d.Format(FullLabelFormat) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
//
// The day is kept and the result normalized, so that one month before March 31st is "February 31st",
// that is March 2nd or 3rd.
func (d Date) AddMonth(i int) Date { return New(d.y, d.m+time.Month(i), d.d) }

// AddYear returns a new Date with the given number of years added, normalized like AddMonth.
func (d Date) AddYear(i int) Date { return New(d.y+i, d.m, d.d) }

// StartOfYear returns January 1st of d's year.
func (d Date) StartOfYear() Date { return New(d.y, time.January, 1) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, strings.TrimSpace(str))
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return Of(on), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// isoPrefixRE matches the calendar part of any ISO-8601 date or timestamp.
var isoPrefixRE = regexp.MustCompile(`^\s*(\d{4})-(\d{1,2})-(\d{1,2})`)

// fallbackLayouts are tried in order when the value has no ISO date prefix.
var fallbackLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"20060102",
}

// ParseFlexible parses the date part of str.
//
// When str starts with YYYY-MM-DD (a plain date, or a timestamp such as
// "2024-03-01T23:30:00-05:00"), the date is built from those numbers
// directly, so the calendar day never shifts with a time zone. Other values
// are tried against a list of common layouts. Anything else fails with
// ErrUnparseable.
func ParseFlexible(str string) (Date, error) {
	if m := isoPrefixRE.FindStringSubmatch(str); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if mo < 1 || mo > 12 || d < 1 || d > 31 {
			return Date{}, fmt.Errorf("%w: %q is out of range", ErrUnparseable, str)
		}
		return New(y, time.Month(mo), d), nil
	}
	s := strings.TrimSpace(str)
	for _, layout := range fallbackLayouts {
		if on, err := time.Parse(layout, s); err == nil {
			return Of(on), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrUnparseable, str)
}

// FromUnixMilli returns the UTC calendar date of a Unix timestamp in milliseconds.
func FromUnixMilli(ms int64) Date { return Of(time.UnixMilli(ms).UTC()) }

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := ParseFlexible(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
