package finboard

import (
	"slices"

	"github.com/etnz/finboard/date"
	"github.com/shopspring/decimal"
)

// PriceWindow is the part of a price series that falls within a chart window.
type PriceWindow struct {
	Window    date.Window
	Reference date.Date // the day the window ends on
	Cutoff    date.Date // first day of the window, included
	Points    []PricePoint
	// Unparsed lists the raw dates of records skipped because their date could not be parsed.
	Unparsed []string
}

// SelectWindow returns the records of a newest-first price series that are on or after the
// cutoff of window w ending on ref, oldest first.
//
// Records after ref are kept: the window only bounds the past. Records whose date is not
// valid are skipped and reported in Unparsed. SelectWindow does not modify records.
//
// An unknown window token fails with date.ErrUnknownWindow.
func SelectWindow(records []PriceRecord, w date.Window, ref date.Date) (*PriceWindow, error) {
	cutoff, err := w.Cutoff(ref)
	if err != nil {
		return nil, err
	}
	pw := &PriceWindow{
		Window:    w,
		Reference: ref,
		Cutoff:    cutoff,
		Points:    []PricePoint{},
	}
	if len(records) == 0 {
		return pw, nil
	}

	// The feed is newest first: reversing it gives the chronological order.
	// The stable sort only matters when the feed breaks that promise.
	ascending := slices.Clone(records)
	slices.Reverse(ascending)
	slices.SortStableFunc(ascending, func(a, b PriceRecord) int { return a.Date.Compare(b.Date.Date) })

	for _, r := range ascending {
		if !r.Date.Valid() {
			pw.Unparsed = append(pw.Unparsed, r.Date.Raw)
			continue
		}
		if r.Date.Before(pw.Cutoff) {
			continue
		}
		pw.Points = append(pw.Points, r.point())
	}
	return pw, nil
}

// Len returns the number of points in the window.
func (pw *PriceWindow) Len() int { return len(pw.Points) }

// First returns the oldest point, and false if the window is empty.
func (pw *PriceWindow) First() (PricePoint, bool) {
	if len(pw.Points) == 0 {
		return PricePoint{}, false
	}
	return pw.Points[0], true
}

// Last returns the most recent point, and false if the window is empty.
func (pw *PriceWindow) Last() (PricePoint, bool) {
	if len(pw.Points) == 0 {
		return PricePoint{}, false
	}
	return pw.Points[len(pw.Points)-1], true
}

// Change returns the close price variation over the window, zero if it is empty.
func (pw *PriceWindow) Change() decimal.Decimal {
	first, ok := pw.First()
	if !ok {
		return decimal.Zero
	}
	last, _ := pw.Last()
	return last.Close.Sub(first.Close)
}

// ChangePercent returns Change relative to the first close, zero if it is empty or if the first close is zero.
func (pw *PriceWindow) ChangePercent() Percent {
	first, ok := pw.First()
	if !ok {
		return 0
	}
	return percentOf(pw.Change(), first.Close)
}

// High returns the highest high price in the window, zero if it is empty.
func (pw *PriceWindow) High() decimal.Decimal {
	if len(pw.Points) == 0 {
		return decimal.Zero
	}
	h := pw.Points[0].High
	for _, p := range pw.Points[1:] {
		h = decimal.Max(h, p.High)
	}
	return h
}

// Low returns the lowest low price in the window, zero if it is empty.
func (pw *PriceWindow) Low() decimal.Decimal {
	if len(pw.Points) == 0 {
		return decimal.Zero
	}
	l := pw.Points[0].Low
	for _, p := range pw.Points[1:] {
		l = decimal.Min(l, p.Low)
	}
	return l
}
