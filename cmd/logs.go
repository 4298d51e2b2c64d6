package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ecodex/carbontrack/renderer"
	"github.com/google/subcommands"
)

type logsCmd struct{}

func (*logsCmd) Name() string     { return "logs" }
func (*logsCmd) Synopsis() string { return "display the activity log history" }
func (*logsCmd) Usage() string {
	return `cft -u <username> logs

  Displays every logged activity in stored order. The first column is the
  index to pass to the edit and rm commands; indices shift after a deletion,
  so list again before editing.
`
}

func (*logsCmd) SetFlags(*flag.FlagSet) {}

func (c *logsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.LogsMarkdown(name, eng.Logs(name)))
	return subcommands.ExitSuccess
}
