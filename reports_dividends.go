package finboard

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DividendCalendar groups dividend payments by year and month.
type DividendCalendar struct {
	byYear map[int][]MonthlyAggregate // months in descending order
	total  decimal.Decimal            // all payments, all years
	// Unparsed lists the raw payment dates of payments skipped because their date could not be parsed.
	Unparsed []string
}

// DividendSummary holds the statistics of one year of a DividendCalendar.
type DividendSummary struct {
	Year        int               `json:"year"`
	TotalIncome decimal.Decimal   `json:"-"` // every payment, regardless of the year
	YearTotal   decimal.Decimal   `json:"total"`
	AvgMonthly  decimal.Decimal   `json:"avgMonthly"` // YearTotal over the number of months with a payment
	BestMonth   *MonthlyAggregate `json:"bestMonth,omitempty"`
}

// AggregateByMonth groups payments into monthly aggregates.
//
// Within a year, months are sorted from December to January. Payments whose
// payment date is not valid are skipped and reported in Unparsed.
func AggregateByMonth(payments []DividendPayment) *DividendCalendar {
	c := &DividendCalendar{byYear: make(map[int][]MonthlyAggregate)}
	for _, p := range payments {
		if !p.PaymentDate.Valid() {
			c.Unparsed = append(c.Unparsed, p.PaymentDate.Raw)
			continue
		}
		year, month := p.PaymentDate.Year(), int(p.PaymentDate.Month())
		months := c.byYear[year]
		i := slices.IndexFunc(months, func(m MonthlyAggregate) bool { return m.Month == month })
		if i < 0 {
			months = append(months, MonthlyAggregate{
				Year:      year,
				Month:     month,
				MonthName: time.Month(month).String(),
				Total:     decimal.Zero,
			})
			i = len(months) - 1
		}
		months[i].add(p)
		c.byYear[year] = months
		c.total = c.total.Add(p.Amount)
	}
	for _, months := range c.byYear {
		slices.SortFunc(months, func(a, b MonthlyAggregate) int { return cmp.Compare(b.Month, a.Month) })
	}
	return c
}

// Years returns the years with at least one payment, most recent first.
func (c *DividendCalendar) Years() []int {
	years := make([]int, 0, len(c.byYear))
	for y := range c.byYear {
		years = append(years, y)
	}
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })
	return years
}

// Months returns a copy of the monthly aggregates of year, most recent month first.
func (c *DividendCalendar) Months(year int) []MonthlyAggregate {
	months := c.byYear[year]
	if months == nil {
		return nil
	}
	copies := make([]MonthlyAggregate, len(months))
	for i, m := range months {
		copies[i] = m.clone()
	}
	return copies
}

// Total returns the sum of all payments, regardless of the year.
func (c *DividendCalendar) Total() decimal.Decimal { return c.total }

// Summary computes the statistics of year.
//
// A year without payments has zero totals and a nil BestMonth. Among months
// with the same total, the latest in the year is the best one.
func (c *DividendCalendar) Summary(year int) DividendSummary {
	s := DividendSummary{
		Year:        year,
		TotalIncome: c.total,
		YearTotal:   decimal.Zero,
		AvgMonthly:  decimal.Zero,
	}
	months := c.byYear[year]
	for _, m := range months {
		s.YearTotal = s.YearTotal.Add(m.Total)
		if s.BestMonth == nil || m.Total.GreaterThan(s.BestMonth.Total) {
			best := m.clone()
			s.BestMonth = &best
		}
	}
	if len(months) > 0 {
		s.AvgMonthly = s.YearTotal.Div(decimal.NewFromInt(int64(len(months))))
	}
	return s
}

// LastMonths returns a copy of the n most recent monthly aggregates across all years, oldest first.
//
// Months without payment are not part of the series.
func (c *DividendCalendar) LastMonths(n int) []MonthlyAggregate {
	var all []MonthlyAggregate
	for _, months := range c.byYear {
		for _, m := range months {
			all = append(all, m.clone())
		}
	}
	slices.SortFunc(all, func(a, b MonthlyAggregate) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Month, b.Month))
	})
	if n >= 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}
