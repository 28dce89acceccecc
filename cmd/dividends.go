package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finboard"
	"github.com/etnz/finboard/config"
	"github.com/etnz/finboard/date"
	"github.com/etnz/finboard/renderer"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	year   int
	months int
	file   string
	path   string
	json   bool
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display dividend income by month" }
func (*dividendsCmd) Usage() string {
	return `fbd dividends [-y <year>] [-n <months>] [-f <file>] [-path <jsonpath>] [-json]

  Groups dividend payments by month and displays the totals of a year, its
  monthly average and best month, and the most recent months.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report on. Defaults to the most recent year with a payment.")
	f.IntVar(&c.months, "n", -1, "Number of recent months to display. Defaults to the configured number.")
	f.StringVar(&c.file, "f", "", "Dividend payments JSON file, '-' for stdin. Defaults to the configured file.")
	f.StringVar(&c.path, "path", "", "JSONPath to the payment records in the file. Defaults to the configured path.")
	f.BoolVar(&c.json, "json", false, "Print the whole calendar as JSON instead of markdown.")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return exitStatus(err)
	}
	if c.json {
		calendar, err := c.calendar(cfg)
		if err != nil {
			return exitStatus(err)
		}
		return exitStatus(printJSON(calendar))
	}
	md, err := c.report(cfg)
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// calendar loads the payments and groups them by month.
func (c *dividendsCmd) calendar(cfg *config.Config) (*finboard.DividendCalendar, error) {
	file, path := orDefault(c.file, cfg.Dividends.File), orDefault(c.path, cfg.Dividends.Path)
	payments, skipped, err := finboard.LoadDividends(file, path)
	if err != nil {
		return nil, err
	}
	warnSkipped(file, skipped)
	calendar := finboard.AggregateByMonth(payments)
	for _, raw := range calendar.Unparsed {
		log.Warn().Str("file", file).Str("payment_date", raw).Msg("skipped a dividend payment with an unparseable date")
	}
	log.Debug().Int("payments", len(payments)).Ints("years", calendar.Years()).Msg("dividends aggregated")
	return calendar, nil
}

// report renders the dividend report of the selected year.
func (c *dividendsCmd) report(cfg *config.Config) (string, error) {
	if c.year < 0 {
		return "", usageError(errNegative("-y", c.year))
	}
	months := c.months
	if months < 0 {
		months = cfg.LastMonths
	}
	calendar, err := c.calendar(cfg)
	if err != nil {
		return "", err
	}

	year := c.year
	if year == 0 {
		year = date.Today().Year()
		if years := calendar.Years(); len(years) > 0 {
			year = years[0]
		}
	}
	return renderer.DividendsMarkdown(calendar, year, months, cfg.Currency), nil
}
