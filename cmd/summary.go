package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecodex/carbontrack"
	"github.com/ecodex/carbontrack/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	days int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the footprint summary report" }
func (*summaryCmd) Usage() string {
	return `cft -u <username> summary [-days n]

  Displays the weekly total, goal progress, category breakdown, a daily
  series over the last n days, and a reduction tip for the top contributing
  category.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 7, "Number of days in the daily series")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := username()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.days <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -days must be positive")
		return subcommands.ExitUsageError
	}
	eng, err := openEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	s := eng.Summary(name, c.days)
	printMarkdown(renderer.SummaryMarkdown(name, s, carbontrack.ContextualTip(s.TopCategory)))
	return subcommands.ExitSuccess
}
