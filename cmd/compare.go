package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecodex/carbontrack/renderer"
	"github.com/google/subcommands"
)

type compareCmd struct{}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the weekly total against the population" }
func (*compareCmd) Usage() string {
	return `cft -u <username> compare

  Compares the user's trailing 7-day total against the population average:
  a synthetic baseline sample combined with every other stored user that has
  current activity.
`
}

func (*compareCmd) SetFlags(*flag.FlagSet) {}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, err := username()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	eng, err := openEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ComparisonMarkdown(name, eng.CompareToPopulation(name)))
	return subcommands.ExitSuccess
}
