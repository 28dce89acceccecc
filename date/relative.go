package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)
	monthDayDateRE = regexp.MustCompile(`^(?:(\d+)-)?(\d+)$`)
)

// ParseRelative parses a date typed on the command line.
//
// Besides ISO dates it accepts "0d" for today, relative offsets with a
// mandatory sign (e.g. -1d, +2w, -1m, -1q, -1y) and [MM-]DD within the
// current year, where a 0 day or month means the last one of the previous
// month or year.
func ParseRelative(str string) (Date, error) { return parseRelativeTo(str, Today()) }

func parseRelativeTo(str string, today Date) (Date, error) {
	str = strings.TrimSpace(str)

	if str == "0d" || str == "" {
		return today, nil
	}

	// Relative Duration Format (e.g., -1d, +2w) - sign is mandatory for non-zero
	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			// This should not happen given the regex
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return today.AddMonth(num), nil
		case "q":
			return today.AddMonth(num * 3), nil
		case "y":
			return today.AddYear(num), nil
		}
	}

	// [MM-]DD Format (e.g., 27, 8-27, 0, 8-0, 0-15)
	if match := monthDayDateRE.FindStringSubmatch(str); match != nil {
		day, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid day in date %q: %w", str, err)
		}
		year, month := today.Year(), today.Month()
		if match[1] != "" {
			m, err := strconv.Atoi(match[1])
			if err != nil {
				return Date{}, fmt.Errorf("invalid month in date %q: %w", str, err)
			}
			if m == 0 {
				year--
				month = time.December
			} else {
				month = time.Month(m)
			}
		}
		// day 0 is the last day of previous month, New normalizes it.
		return New(year, month, day), nil
	}

	return Parse(str)
}
