package date

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWindow is returned for a token that is not one of Windows().
var ErrUnknownWindow = errors.New("unknown window")

// Window is a chart period token, relative to a reference date.
type Window string

const (
	FiveDays    Window = "5d"
	OneMonth    Window = "1m"
	ThreeMonths Window = "3m"
	SixMonths   Window = "6m"
	YearToDate  Window = "ytd"
	OneYear     Window = "1y"
	ThreeYears  Window = "3y"
	FiveYears   Window = "5y"
)

// Windows returns every window token, shortest first.
func Windows() []Window {
	return []Window{FiveDays, OneMonth, ThreeMonths, SixMonths, YearToDate, OneYear, ThreeYears, FiveYears}
}

// ParseWindow parses a window token, case insensitive.
func ParseWindow(s string) (Window, error) {
	w := Window(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case FiveDays, OneMonth, ThreeMonths, SixMonths, YearToDate, OneYear, ThreeYears, FiveYears:
		return w, nil
	default:
		return "", fmt.Errorf("%w %q, want one of %v", ErrUnknownWindow, s, Windows())
	}
}

// Name returns a human readable name for the window.
func (w Window) Name() string {
	switch w {
	case FiveDays:
		return "5 days"
	case OneMonth:
		return "1 month"
	case ThreeMonths:
		return "3 months"
	case SixMonths:
		return "6 months"
	case YearToDate:
		return "Year-to-Date"
	case OneYear:
		return "1 year"
	case ThreeYears:
		return "3 years"
	case FiveYears:
		return "5 years"
	default:
		return string(w)
	}
}

// Cutoff returns the earliest date, inclusive, that belongs to the window ending on ref.
//
// Months and years are calendar arithmetic: the day of month is kept and
// normalized, so 1m before 2024-03-31 is 2024-03-02 ("February 31st").
// An unknown token, the zero Window included, fails with ErrUnknownWindow.
func (w Window) Cutoff(ref Date) (Date, error) {
	switch w {
	case FiveDays:
		return ref.Add(-5), nil
	case OneMonth:
		return ref.AddMonth(-1), nil
	case ThreeMonths:
		return ref.AddMonth(-3), nil
	case SixMonths:
		return ref.AddMonth(-6), nil
	case YearToDate:
		return ref.StartOfYear(), nil
	case OneYear:
		return ref.AddYear(-1), nil
	case ThreeYears:
		return ref.AddYear(-3), nil
	case FiveYears:
		return ref.AddYear(-5), nil
	default:
		return Date{}, fmt.Errorf("%w %q", ErrUnknownWindow, string(w))
	}
}

// Range returns the range from the window cutoff to ref, both included.
func (w Window) Range(ref Date) (Range, error) {
	from, err := w.Cutoff(ref)
	if err != nil {
		return Range{}, err
	}
	return Range{From: from, To: ref}, nil
}
