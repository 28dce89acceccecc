package cmd

import (
	"context"
	"errors"
	"flag"

	"github.com/etnz/finboard/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `fbd topic [<topic>...]

  Shows the documentation of the given topics, or the list of topics when
  none is given. The '*' topic shows them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.report(f.Args())
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

func (c *topicCmd) report(topics []string) (string, error) {
	if len(topics) == 0 {
		topics = []string{docs.Index}
	}
	doc, err := docs.GetTopics(topics...)
	if errors.Is(err, docs.ErrUnknownTopic) {
		return "", usageError(err)
	}
	return doc, err
}
