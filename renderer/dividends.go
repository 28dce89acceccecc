package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/finboard"
	md "github.com/nao1215/markdown"
)

// DividendsMarkdown renders the dividend report of year, with the lastN most
// recent months as a trailing series.
//
// Amounts are formatted in currency when the payments of a month do not
// share one.
func DividendsMarkdown(c *finboard.DividendCalendar, year, lastN int, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Dividends %d", year)).LF()

	s := c.Summary(year)
	best := "-"
	if s.BestMonth != nil {
		best = fmt.Sprintf("%s (%s)", s.BestMonth.MonthName, s.BestMonth.Money(currency))
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Income"), md.Bold(finboard.M(s.TotalIncome, currency).String())},
		Rows: [][]string{
			{fmt.Sprintf("%d Total", year), finboard.M(s.YearTotal, currency).String()},
			{"Monthly Average", finboard.M(s.AvgMonthly, currency).String()},
			{"Best Month", best},
		},
	}).LF()

	if months := c.Months(year); len(months) > 0 {
		doc.H2(fmt.Sprintf("%d by Month", year)).LF()
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Month", "Payments", "Total"},
			Rows:      [][]string{},
		}
		for _, m := range months {
			table.Rows = append(table.Rows, []string{
				m.MonthName,
				fmt.Sprint(len(m.Payments)),
				m.Money(currency).String(),
			})
		}
		doc.Table(table).LF()
	} else {
		doc.PlainText(fmt.Sprintf("No dividend paid in %d.", year)).LF()
	}

	if series := c.LastMonths(lastN); len(series) > 0 {
		doc.H2(fmt.Sprintf("Last %d Months", len(series))).LF()
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Month", "Total"},
			Rows:      [][]string{},
		}
		for _, m := range series {
			table.Rows = append(table.Rows, []string{
				fmt.Sprintf("%s %d", time.Month(m.Month).String()[:3], m.Year),
				m.Money(currency).String(),
			})
		}
		doc.Table(table).LF()
	}

	if years := c.Years(); len(years) > 1 {
		doc.H2("By Year").LF()
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Year", "Total"},
			Rows:      [][]string{},
		}
		for _, y := range years {
			table.Rows = append(table.Rows, []string{
				fmt.Sprint(y),
				finboard.M(c.Summary(y).YearTotal, currency).String(),
			})
		}
		doc.Table(table).LF()
	}

	unparsedNote(doc, c.Unparsed)
	return doc.String()
}
