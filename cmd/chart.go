package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finboard"
	"github.com/etnz/finboard/config"
	"github.com/etnz/finboard/date"
	"github.com/etnz/finboard/renderer"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	token  string // window token
	date   string
	file   string
	path   string
	symbol string
	json   bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "display the prices of a chart window" }
func (*chartCmd) Usage() string {
	return `fbd chart [-w <window>] [-d <date>] [-f <file>] [-path <jsonpath>] [-symbol <name>] [-json]

  Displays the daily prices of a newest-first price feed that fall within
  a chart window ending on a reference date, and the price change over it.
  See 'fbd topic windows' for the window tokens.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.token, "w", "", "Chart window: 5d, 1m, 3m, 6m, ytd, 1y, 3y or 5y. Defaults to the configured window.")
	f.StringVar(&c.date, "d", "0d", "Reference date of the window. See 'fbd topic dates' for supported formats.")
	f.StringVar(&c.file, "f", "", "Price feed JSON file, '-' for stdin. Defaults to the configured file.")
	f.StringVar(&c.path, "path", "", "JSONPath to the price records in the file. Defaults to the configured path.")
	f.StringVar(&c.symbol, "symbol", "", "Symbol to display in the title.")
	f.BoolVar(&c.json, "json", false, "Print the window as JSON instead of markdown.")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return exitStatus(err)
	}
	if c.json {
		pw, err := c.window(cfg)
		if err != nil {
			return exitStatus(err)
		}
		return exitStatus(printJSON(pw))
	}
	md, err := c.report(cfg)
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// report renders the window selected by the flags.
func (c *chartCmd) report(cfg *config.Config) (string, error) {
	pw, err := c.window(cfg)
	if err != nil {
		return "", err
	}
	return renderer.PriceWindowMarkdown(pw, c.symbol, cfg.Currency), nil
}

// window loads the price feed and selects the window requested by the flags.
func (c *chartCmd) window(cfg *config.Config) (*finboard.PriceWindow, error) {
	w := cfg.ChartWindow()
	if c.token != "" {
		var err error
		if w, err = date.ParseWindow(c.token); err != nil {
			return nil, usageError(err)
		}
	}
	ref, err := date.ParseRelative(c.date)
	if err != nil {
		return nil, usageError(fmt.Errorf("invalid -d: %w", err))
	}

	file, path := orDefault(c.file, cfg.Prices.File), orDefault(c.path, cfg.Prices.Path)
	records, skipped, err := finboard.LoadPrices(file, path)
	if err != nil {
		return nil, err
	}
	warnSkipped(file, skipped)

	pw, err := finboard.SelectWindow(records, w, ref)
	if err != nil {
		return nil, err
	}
	for _, raw := range pw.Unparsed {
		log.Warn().Str("file", file).Str("date", raw).Msg("skipped a price record with an unparseable date")
	}
	log.Debug().Str("window", string(w)).Stringer("cutoff", pw.Cutoff).Int("records", len(records)).Int("points", pw.Len()).Msg("window selected")

	return pw, nil
}

// orDefault returns value, or def if value is empty.
func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
