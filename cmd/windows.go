package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finboard/date"
	"github.com/etnz/finboard/renderer"
	"github.com/google/subcommands"
)

type windowsCmd struct {
	date string
}

func (*windowsCmd) Name() string     { return "windows" }
func (*windowsCmd) Synopsis() string { return "list the chart windows and their cutoff" }
func (*windowsCmd) Usage() string {
	return `fbd windows [-d <date>]

  Lists every chart window token with the first day it includes when the
  window ends on the given date.
`
}

func (c *windowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Reference date. See 'fbd topic dates' for supported formats.")
}

func (c *windowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := loadConfig(); err != nil {
		return exitStatus(err)
	}
	md, err := c.report()
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

func (c *windowsCmd) report() (string, error) {
	ref, err := date.ParseRelative(c.date)
	if err != nil {
		return "", usageError(fmt.Errorf("invalid -d: %w", err))
	}
	return renderer.WindowsMarkdown(ref), nil
}
